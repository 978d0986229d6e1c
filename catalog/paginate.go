package catalog

import "superpf3/models"

// Page descreve uma fatia da lista filtrada. A página pedida é grampeada
// em [1, TotalPages]: depois de filtrar, um número de página que ficou
// fora do intervalo cai na última página válida em vez de dar erro.
type Page struct {
	Number     int `json:"page"`
	Size       int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`

	start, end int
}

// Paginate calcula a janela da página sobre uma lista de n itens.
func Paginate(n, page, size int) Page {
	if size <= 0 {
		size = 6
	}

	totalPages := (n + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}

	return Page{
		Number:     page,
		Size:       size,
		Total:      n,
		TotalPages: totalPages,
		start:      start,
		end:        end,
	}
}

// PageOf devolve os itens da página.
func PageOf(tools []models.ToolWithSlug, page, size int) ([]models.ToolWithSlug, Page) {
	p := Paginate(len(tools), page, size)
	return tools[p.start:p.end], p
}
