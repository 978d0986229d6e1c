package catalog

import (
	"testing"

	"superpf3/models"

	"github.com/stretchr/testify/assert"
)

func TestWithFieldNaoMutaOEstadoAnterior(t *testing.T) {
	s1 := EmptyEditor()
	s2 := s1.WithField("title", "Calculadora")
	s3 := s2.WithField("badge", models.BADGE_NOVO)

	assert.Equal(t, "", s1.Title)
	assert.Equal(t, "Calculadora", s2.Title)
	assert.Equal(t, "", s2.Badge)
	assert.Equal(t, models.BADGE_NOVO, s3.Badge)
}

func TestWithFieldCampoDesconhecido(t *testing.T) {
	s := EmptyEditor().WithField("nope", "x")
	assert.Equal(t, EmptyEditor(), s)
}

func TestStartEditCarregaFerramentaEDetalhes(t *testing.T) {
	badge := models.BADGE_ATUALIZADO
	tool := models.Tool{
		ID: 7, Title: "Dashboard", Category: "Agro",
		Description: "KPIs", ImageURL: "http://img", LinkURL: "http://go",
		Badge: &badge,
	}
	detail := models.ToolDetail{ToolID: 7, Slug: "dashboard", Owner: "Núcleo"}

	s := StartEdit(tool, &detail)
	assert.Equal(t, int64(7), s.EditingID)
	assert.Equal(t, models.BADGE_ATUALIZADO, s.Badge)
	assert.Equal(t, "dashboard", s.Detail.Slug)

	// ferramenta sem detalhes abre o formulário de detalhes em branco
	s = StartEdit(tool, nil)
	assert.Equal(t, models.ToolDetail{}, s.Detail)
}

func TestToolMontaPayload(t *testing.T) {
	s := EmptyEditor().
		WithField("title", "Calculadora").
		WithField("linkUrl", "http://go").
		WithField("badge", models.BADGE_NOVO)

	tool := s.Tool()
	assert.Equal(t, "Calculadora", tool.Title)
	if assert.NotNil(t, tool.Badge) {
		assert.Equal(t, models.BADGE_NOVO, *tool.Badge)
	}

	// badge vazia vira null, não string vazia
	semBadge := EmptyEditor().WithField("title", "X").Tool()
	assert.Nil(t, semBadge.Badge)
}

func TestDetailPayloadSoComConteudo(t *testing.T) {
	s := EmptyEditor().WithField("title", "Calculadora PRICE")

	_, ok := s.DetailPayload(9)
	assert.False(t, ok, "formulário de detalhes vazio não deve gravar nada")

	s.Detail.Owner = "Núcleo PF3"
	d, ok := s.DetailPayload(9)
	assert.True(t, ok)
	assert.Equal(t, int64(9), d.ToolID)

	// slug em branco é gerado a partir do título
	assert.Equal(t, "calculadora-price", d.Slug)
}

func TestDetailPayloadMantemSlugInformado(t *testing.T) {
	s := EmptyEditor().WithField("title", "Calculadora PRICE")
	s.Detail.Slug = "meu-slug"

	d, ok := s.DetailPayload(9)
	assert.True(t, ok)
	assert.Equal(t, "meu-slug", d.Slug)
}
