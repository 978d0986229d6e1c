package controllers

import (
	"log"
	"net/http"
	"strconv"

	"superpf3/catalog"
	dbpkg "superpf3/db"
	"superpf3/models"

	"github.com/gin-gonic/gin"
)

func badgeLabel(badge *string) string {
	if badge == nil || *badge == "" {
		return "sem badge"
	}
	return *badge
}

// GET /api/tools
//
// Sem query params devolve o array completo (mais novo primeiro, com o
// detailsSlug quando houver), exatamente o que o front busca uma vez e
// filtra localmente. Com search/category/page o mesmo filtro/paginação
// do front roda aqui no servidor.
func GetTools(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var tools []models.ToolWithSlug
	// aspas nos identificadores camelCase, senão o postgres baixa a caixa
	err := db.Table("tools").
		Select(`tools.*, tool_details.slug AS "detailsSlug"`).
		Joins("LEFT JOIN tool_details ON tool_details.tool_id = tools.id").
		Order("tools.id DESC").
		Scan(&tools).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if tools == nil {
		tools = []models.ToolWithSlug{}
	}

	search := c.Query("search")
	category := c.Query("category")
	if search != "" || category != "" {
		tools = catalog.Filter(tools, search, category)
	}

	if pageParam := c.Query("page"); pageParam != "" {
		page, _ := strconv.Atoi(pageParam)
		size, _ := strconv.Atoi(c.Query("per_page"))
		if size <= 0 {
			size = conf.PageSize
		}
		items, meta := catalog.PageOf(tools, page, size)
		RespondSuccess(c, gin.H{
			"tools":       items,
			"page":        meta.Number,
			"per_page":    meta.Size,
			"total":       meta.Total,
			"total_pages": meta.TotalPages,
		})
		return
	}

	RespondSuccess(c, tools)
}

// GET /api/tools/:id
func GetToolByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}
	var tool models.Tool
	if err := db.First(&tool, id).Error; err != nil {
		RespondError(c, "ferramenta não encontrada", http.StatusNotFound)
		return
	}
	RespondSuccess(c, tool)
}

// POST /api/tools
func CreateTool(c *gin.Context) {
	var tool models.Tool
	if err := c.Bind(&tool); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if tool.Title == "" || tool.Description == "" || tool.LinkURL == "" {
		RespondError(c, "title, description e linkUrl são obrigatórios", http.StatusBadRequest)
		return
	}
	if conf.CategoryRequired != nil && *conf.CategoryRequired && tool.Category == "" {
		RespondError(c, "category é obrigatório", http.StatusBadRequest)
		return
	}
	if tool.Badge != nil && *tool.Badge == "" {
		tool.Badge = nil
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}
	tool.ID = 0
	if err := db.Create(&tool).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("Nova ferramenta criada: %s (%s)", tool.Title, badgeLabel(tool.Badge))
	c.JSON(http.StatusCreated, tool)
}

// PUT /api/tools/:id
//
// Substituição integral dos campos mutáveis, como o admin envia o
// formulário completo.
func UpdateTool(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var body models.Tool
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var tool models.Tool
	if err := db.First(&tool, id).Error; err != nil {
		RespondError(c, "ferramenta não encontrada", http.StatusNotFound)
		return
	}

	tool.Title = body.Title
	tool.Category = body.Category
	tool.Description = body.Description
	tool.ImageURL = body.ImageURL
	tool.LinkURL = body.LinkURL
	if body.Badge != nil && *body.Badge == "" {
		tool.Badge = nil
	} else {
		tool.Badge = body.Badge
	}

	if err := db.Save(&tool).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("Ferramenta atualizada: %s (%s)", tool.Title, badgeLabel(tool.Badge))
	RespondSuccess(c, tool)
}

// DELETE /api/tools/:id
//
// Apaga os detalhes vinculados antes (se existirem; zero linhas não é
// erro) e depois a ferramenta em si.
func DeleteTool(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Delete(&models.ToolDetail{}, "tool_id = ?", id).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	res := db.Delete(&models.Tool{}, "id = ?", id)
	if res.Error != nil {
		RespondError(c, res.Error.Error(), http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		RespondError(c, "ferramenta não encontrada", http.StatusNotFound)
		return
	}

	log.Printf("Ferramenta ID %d e detalhes (se houver) excluídos", id)
	c.Status(http.StatusNoContent)
}
