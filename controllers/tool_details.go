package controllers

import (
	"log"
	"net/http"
	"strings"

	dbpkg "superpf3/db"
	"superpf3/models"
	"superpf3/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// isUniqueViolation reconhece violação de índice único no sqlite3 e no
// postgres, sem acoplar no driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// POST /api/tool-details
//
// Upsert chaveado por tool_id: se a ferramenta já tem detalhes, atualiza
// no lugar (200); senão insere (201). Slug é normalizado e validado antes
// de gravar; colisão de slug com outra ferramenta vira 409. Dois upserts
// concorrentes para a mesma ferramenta sem detalhes também caem no 409
// (o perdedor bate no unique de tool_id) — é conflito retryável, não bug.
func UpsertToolDetail(c *gin.Context) {
	var detail models.ToolDetail
	if err := c.Bind(&detail); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if detail.ToolID <= 0 {
		RespondError(c, "tool_id é obrigatório", http.StatusBadRequest)
		return
	}

	detail.Slug = tools.ToSlug(detail.Slug)
	if !tools.IsValidSlug(detail.Slug) {
		RespondError(c, "Slug inválido. Use minúsculas, números e hífens (min 3 chars).", http.StatusBadRequest)
		return
	}

	// Conteúdo rico nunca entra cru no banco.
	detail.ContentHTML = tools.SanitizeHTML(detail.ContentHTML)
	detail.ChangelogHTML = tools.SanitizeHTML(detail.ChangelogHTML)

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	// Detalhe nunca existe sem a ferramenta dona. O sqlite não aceita
	// ALTER ... ADD CONSTRAINT, então a referência é garantida aqui.
	if err := db.First(&models.Tool{}, detail.ToolID).Error; err != nil {
		RespondError(c, "ferramenta não encontrada", http.StatusNotFound)
		return
	}

	res := db.Model(&models.ToolDetail{}).
		Where("tool_id = ?", detail.ToolID).
		Updates(map[string]interface{}{
			"slug":                detail.Slug,
			"owner":               detail.Owner,
			"owner_contact":       detail.OwnerContact,
			"update_schedule":     detail.UpdateSchedule,
			"data_source":         detail.DataSource,
			"data_source_url":     detail.DataSourceURL,
			"access_requirements": detail.AccessRequirements,
			"tags":                detail.Tags,
			"content_md":          detail.ContentMD,
			"changelog_md":        detail.ChangelogMD,
			"content_html":        detail.ContentHTML,
			"changelog_html":      detail.ChangelogHTML,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			RespondError(c, "Slug já está em uso", http.StatusConflict)
			return
		}
		RespondError(c, res.Error.Error(), http.StatusInternalServerError)
		return
	}

	if res.RowsAffected > 0 {
		var updated models.ToolDetail
		if err := db.Where("tool_id = ?", detail.ToolID).First(&updated).Error; err != nil {
			RespondError(c, err.Error(), http.StatusInternalServerError)
			return
		}
		log.Printf("Detalhes atualizados: tool_id=%d slug=%s", updated.ToolID, updated.Slug)
		RespondSuccess(c, updated)
		return
	}

	detail.ID = 0
	if err := db.Create(&detail).Error; err != nil {
		if isUniqueViolation(err) {
			RespondError(c, "Slug já está em uso", http.StatusConflict)
			return
		}
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("Detalhes criados: tool_id=%d slug=%s", detail.ToolID, detail.Slug)
	c.JSON(http.StatusCreated, detail)
}

// GET /api/tool-details/by-tool/:toolId
//
// Usado pelo admin para pré-carregar o formulário de detalhes. Ferramenta
// sem detalhes devolve null, não é erro.
func GetToolDetailByToolID(c *gin.Context) {
	toolID, ok := ParamID(c, "toolId")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var detail models.ToolDetail
	err := db.Where("tool_id = ?", toolID).First(&detail).Error
	if gorm.IsRecordNotFoundError(err) {
		RespondSuccess(c, nil)
		return
	}
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, detail)
}

// GET /api/tool-details/:slug
//
// Página pública de detalhes: campos da ferramenta juntados com os do
// detalhe, mais o conteúdo já resolvido para render (HTML sanitizado,
// com fallback para o Markdown convertido).
func GetToolDetailBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		RespondError(c, "slug é obrigatório", http.StatusBadRequest)
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var page models.ToolDetailPage
	err := db.Table("tool_details").
		Select(`tools.id AS "toolId", tools.title, tools.category, tools.description,
			tools."imageUrl", tools."linkUrl", tools.badge,
			tool_details.id AS "detailsId", tool_details.slug, tool_details.owner,
			tool_details.owner_contact, tool_details.update_schedule,
			tool_details.data_source, tool_details.data_source_url,
			tool_details.access_requirements, tool_details.tags,
			tool_details.content_md, tool_details.changelog_md,
			tool_details.content_html, tool_details.changelog_html,
			tool_details.updated_at`).
		Joins("JOIN tools ON tools.id = tool_details.tool_id").
		Where("tool_details.slug = ?", slug).
		Scan(&page).Error
	if gorm.IsRecordNotFoundError(err) {
		RespondError(c, "Detalhes não encontrados", http.StatusNotFound)
		return
	}
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	page.Content = tools.RenderContent(page.ContentHTML, page.ContentMD)
	page.Changelog = tools.RenderContent(page.ChangelogHTML, page.ChangelogMD)

	RespondSuccess(c, page)
}
