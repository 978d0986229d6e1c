package catalog

import (
	"fmt"
	"testing"

	"superpf3/models"

	"github.com/stretchr/testify/assert"
)

func nTools(n int) []models.ToolWithSlug {
	out := make([]models.ToolWithSlug, n)
	for i := range out {
		out[i] = models.ToolWithSlug{ID: int64(i + 1), Title: fmt.Sprintf("Ferramenta %d", i+1)}
	}
	return out
}

func TestPaginate13ItensPagina1(t *testing.T) {
	items, p := PageOf(nTools(13), 1, 6)
	assert.Len(t, items, 6)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 13, p.Total)
}

func TestPaginate13ItensUltimaPagina(t *testing.T) {
	items, p := PageOf(nTools(13), 3, 6)
	assert.Len(t, items, 1)
	assert.Equal(t, 3, p.Number)
}

func TestPaginateGrampeiaPaginaForaDoIntervalo(t *testing.T) {
	// depois de filtrar, a página pedida pode ter deixado de existir
	items, p := PageOf(nTools(13), 4, 6)
	assert.Equal(t, 3, p.Number)
	assert.Len(t, items, 1)

	_, p = PageOf(nTools(13), 0, 6)
	assert.Equal(t, 1, p.Number)

	_, p = PageOf(nTools(13), -5, 6)
	assert.Equal(t, 1, p.Number)
}

func TestPaginateListaVazia(t *testing.T) {
	items, p := PageOf(nil, 1, 6)
	assert.Empty(t, items)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.Total)
}

func TestPaginateTamanhoInvalidoUsaDefault(t *testing.T) {
	p := Paginate(13, 1, 0)
	assert.Equal(t, 6, p.Size)
	assert.Equal(t, 3, p.TotalPages)
}

func TestPaginateExato(t *testing.T) {
	items, p := PageOf(nTools(12), 2, 6)
	assert.Len(t, items, 6)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, int64(7), items[0].ID)
}
