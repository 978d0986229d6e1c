package catalog

import (
	"superpf3/models"
	"superpf3/tools"
)

// EditorState é o estado do formulário do admin: os campos do card mais os
// campos de detalhes. Cada atualização produz um novo valor em vez de
// mutar o anterior, então dá pra guardar/comparar estados livremente.
type EditorState struct {
	EditingID int64

	Title       string
	Category    string
	Description string
	ImageURL    string
	LinkURL     string
	Badge       string

	Detail models.ToolDetail
}

// EmptyEditor é o formulário em branco ("Publicar nova ferramenta").
func EmptyEditor() EditorState {
	return EditorState{}
}

// StartEdit carrega uma ferramenta existente no formulário.
func StartEdit(tool models.Tool, detail *models.ToolDetail) EditorState {
	s := EditorState{
		EditingID:   tool.ID,
		Title:       tool.Title,
		Category:    tool.Category,
		Description: tool.Description,
		ImageURL:    tool.ImageURL,
		LinkURL:     tool.LinkURL,
	}
	if tool.Badge != nil {
		s.Badge = *tool.Badge
	}
	if detail != nil {
		s.Detail = *detail
	}
	return s
}

// WithField devolve uma cópia do estado com um campo do card alterado.
// Campo desconhecido é ignorado (estado volta inalterado).
func (s EditorState) WithField(field, value string) EditorState {
	switch field {
	case "title":
		s.Title = value
	case "category":
		s.Category = value
	case "description":
		s.Description = value
	case "imageUrl":
		s.ImageURL = value
	case "linkUrl":
		s.LinkURL = value
	case "badge":
		s.Badge = value
	}
	return s
}

// Tool monta o payload de criação/atualização do card.
func (s EditorState) Tool() models.Tool {
	t := models.Tool{
		ID:          s.EditingID,
		Title:       s.Title,
		Category:    s.Category,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		LinkURL:     s.LinkURL,
	}
	if s.Badge != "" {
		badge := s.Badge
		t.Badge = &badge
	}
	return t
}

// DetailPayload monta o payload do upsert de detalhes para a ferramenta
// salva. Devolve ok=false quando o formulário de detalhes está todo vazio
// (o admin só grava detalhes preenchidos). Slug em branco é gerado a
// partir do título.
func (s EditorState) DetailPayload(toolID int64) (models.ToolDetail, bool) {
	if !s.Detail.HasContent() {
		return models.ToolDetail{}, false
	}
	d := s.Detail
	d.ToolID = toolID
	if d.Slug == "" {
		d.Slug = tools.ToSlug(s.Title)
	}
	return d, true
}
