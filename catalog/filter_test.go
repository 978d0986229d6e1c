package catalog

import (
	"testing"

	"superpf3/models"

	"github.com/stretchr/testify/assert"
)

func tool(title, category string) models.ToolWithSlug {
	return models.ToolWithSlug{Title: title, Category: category}
}

func titles(tools []models.ToolWithSlug) []string {
	out := make([]string, 0, len(tools))
	for _, t := range tools {
		out = append(out, t.Title)
	}
	return out
}

func TestFilterPorTexto(t *testing.T) {
	tools := []models.ToolWithSlug{tool("Alpha", "X"), tool("Beta", "Y")}

	got := Filter(tools, "alp", "")
	assert.Equal(t, []string{"Alpha"}, titles(got))
}

func TestFilterPorCategoria(t *testing.T) {
	tools := []models.ToolWithSlug{tool("Alpha", "X"), tool("Beta", "Y")}

	got := Filter(tools, "", "Y")
	assert.Equal(t, []string{"Beta"}, titles(got))
}

func TestFilterCombinadoSemMatch(t *testing.T) {
	tools := []models.ToolWithSlug{tool("Alpha", "X"), tool("Beta", "Y")}

	// texto não bate com nada da categoria Y
	got := Filter(tools, "alp", "Y")
	assert.Empty(t, got)
}

func TestFilterBuscaNaDescricaoECategoria(t *testing.T) {
	tools := []models.ToolWithSlug{
		{Title: "Calculadora", Description: "amortizações PRICE", Category: "Agro"},
		{Title: "Dashboard", Description: "KPIs de atraso", Category: "Crédito"},
	}

	assert.Equal(t, []string{"Calculadora"}, titles(Filter(tools, "price", "")))
	assert.Equal(t, []string{"Dashboard"}, titles(Filter(tools, "crédito", "")))
}

func TestFilterSemCaixaEComEspacos(t *testing.T) {
	tools := []models.ToolWithSlug{tool("Alpha", "X")}

	assert.Len(t, Filter(tools, "  ALPHA  ", ""), 1)
	assert.Len(t, Filter(tools, "", ""), 1)
}

func TestFilterCategoriaComEspacosNoDado(t *testing.T) {
	tools := []models.ToolWithSlug{tool("Alpha", " X ")}

	// a categoria gravada com espaços ainda casa com o filtro exato
	assert.Len(t, Filter(tools, "", "X"), 1)
}

func TestCategories(t *testing.T) {
	tools := []models.ToolWithSlug{
		tool("a", "Crédito"),
		tool("b", "Agro"),
		tool("c", " Agro "),
		tool("d", ""),
	}

	assert.Equal(t, []string{"Agro", "Crédito"}, Categories(tools))
}
