// Package catalog concentra a lógica de visualização do catálogo que o
// front aplica sobre a lista completa de ferramentas: busca por texto,
// filtro por categoria, paginação e o estado do formulário do admin.
package catalog

import (
	"sort"
	"strings"

	"superpf3/models"
)

// Filter aplica busca textual (substring, sem caixa, sobre título +
// descrição + categoria) combinada com filtro exato de categoria.
func Filter(tools []models.ToolWithSlug, search, category string) []models.ToolWithSlug {
	lower := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.ToolWithSlug, 0, len(tools))
	for _, t := range tools {
		texto := strings.ToLower(t.Title + " " + t.Description + " " + t.Category)
		if !strings.Contains(texto, lower) {
			continue
		}
		if category != "" && strings.TrimSpace(t.Category) != category {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Categories lista as categorias distintas, limpas e ordenadas, para o
// select do filtro.
func Categories(tools []models.ToolWithSlug) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range tools {
		cat := strings.TrimSpace(t.Category)
		if cat == "" || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}
