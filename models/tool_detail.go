package models

import "time"

// ToolDetail é a extensão 1:1 de uma Tool com a página de detalhes pública,
// endereçada por slug. Uma ferramenta tem no máximo um registro de detalhes
// (unique em tool_id); o slug é único entre todos os registros.
type ToolDetail struct {
	ID     int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ToolID int64  `gorm:"column:tool_id;not null" json:"tool_id" form:"tool_id"`
	Slug   string `gorm:"not null" json:"slug" form:"slug"`

	Owner              string `json:"owner" form:"owner"`
	OwnerContact       string `gorm:"column:owner_contact" json:"owner_contact" form:"owner_contact"`
	UpdateSchedule     string `gorm:"column:update_schedule" json:"update_schedule" form:"update_schedule"`
	DataSource         string `gorm:"column:data_source" json:"data_source" form:"data_source"`
	DataSourceURL      string `gorm:"column:data_source_url" json:"data_source_url" form:"data_source_url"`
	AccessRequirements string `gorm:"column:access_requirements" json:"access_requirements" form:"access_requirements"`

	// Tags separadas por vírgula, como o admin envia.
	Tags string `json:"tags" form:"tags"`

	ContentMD     string `gorm:"column:content_md;type:text" json:"content_md" form:"content_md"`
	ChangelogMD   string `gorm:"column:changelog_md;type:text" json:"changelog_md" form:"changelog_md"`
	ContentHTML   string `gorm:"column:content_html;type:text" json:"content_html" form:"content_html"`
	ChangelogHTML string `gorm:"column:changelog_html;type:text" json:"changelog_html" form:"changelog_html"`

	UpdatedAt *time.Time `json:"updated_at"`
}

// HasContent diz se algum campo editável foi preenchido. O admin só grava
// detalhes quando o formulário não está todo vazio.
func (d ToolDetail) HasContent() bool {
	return d.Slug != "" || d.Owner != "" || d.OwnerContact != "" ||
		d.UpdateSchedule != "" || d.DataSource != "" || d.DataSourceURL != "" ||
		d.AccessRequirements != "" || d.Tags != "" ||
		d.ContentMD != "" || d.ChangelogMD != "" ||
		d.ContentHTML != "" || d.ChangelogHTML != ""
}

// ToolDetailPage é a linha da página pública: campos da ferramenta juntados
// com os do detalhe, buscados pelo slug.
type ToolDetailPage struct {
	ToolID      int64   `gorm:"column:toolId" json:"toolId"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `gorm:"column:imageUrl" json:"imageUrl"`
	LinkURL     string  `gorm:"column:linkUrl" json:"linkUrl"`
	Badge       *string `json:"badge"`

	DetailsID          int64  `gorm:"column:detailsId" json:"detailsId"`
	Slug               string `json:"slug"`
	Owner              string `json:"owner"`
	OwnerContact       string `gorm:"column:owner_contact" json:"owner_contact"`
	UpdateSchedule     string `gorm:"column:update_schedule" json:"update_schedule"`
	DataSource         string `gorm:"column:data_source" json:"data_source"`
	DataSourceURL      string `gorm:"column:data_source_url" json:"data_source_url"`
	AccessRequirements string `gorm:"column:access_requirements" json:"access_requirements"`
	Tags               string `json:"tags"`

	ContentMD     string `gorm:"column:content_md" json:"content_md"`
	ChangelogMD   string `gorm:"column:changelog_md" json:"changelog_md"`
	ContentHTML   string `gorm:"column:content_html" json:"content_html"`
	ChangelogHTML string `gorm:"column:changelog_html" json:"changelog_html"`

	UpdatedAt *time.Time `json:"updated_at"`

	// Conteúdo pronto para render: HTML sanitizado quando existir,
	// senão o Markdown convertido e sanitizado.
	Content   string `gorm:"-" json:"content"`
	Changelog string `gorm:"-" json:"changelog"`
}
