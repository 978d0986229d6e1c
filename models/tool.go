package models

import "time"

// Badges exibidas nos cards do catálogo.
const (
	BADGE_NOVO       = "Novo"
	BADGE_ATUALIZADO = "Atualizado"
)

// Tool representa uma ferramenta publicada no catálogo (card com título,
// descrição, imagem, link e badge opcional).
type Tool struct {
	ID          int64   `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Title       string  `gorm:"not null" json:"title" form:"title"`
	Category    string  `json:"category" form:"category"`
	Description string  `gorm:"type:text;not null" json:"description" form:"description"`
	ImageURL    string  `gorm:"column:imageUrl" json:"imageUrl" form:"imageUrl"`
	LinkURL     string  `gorm:"column:linkUrl;not null" json:"linkUrl" form:"linkUrl"`
	Badge       *string `json:"badge" form:"badge"` // "Novo" | "Atualizado" | null

	CreatedAt *time.Time `json:"created_at"`
}

// ToolWithSlug é a linha devolvida pela listagem: a ferramenta mais o slug
// da página de detalhes, quando existir.
type ToolWithSlug struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	ImageURL    string     `gorm:"column:imageUrl" json:"imageUrl"`
	LinkURL     string     `gorm:"column:linkUrl" json:"linkUrl"`
	Badge       *string    `json:"badge"`
	CreatedAt   *time.Time `json:"created_at"`
	DetailsSlug *string    `gorm:"column:detailsSlug" json:"detailsSlug"`
}
