package router

import (
	"log"

	"superpf3/config"
	"superpf3/controllers"
	"superpf3/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Assets enviados pelo admin, servidos read-only.
	r.Static("/uploads", cfg.UploadDir)

	// Bundle do front (opcional em dev; em prod o catálogo serve o SPA).
	if cfg.StaticDir != "" {
		r.Static("/app", cfg.StaticDir)
	}

	api := r.Group("/api")

	// Teste rápido
	api.GET("/health", controllers.Health)

	// Catálogo (público)
	api.GET("/tools", Logger(), controllers.GetTools)
	api.GET("/tools/:id", Logger(), controllers.GetToolByID)

	// Catálogo (admin)
	api.POST("/tools", Logger(), controllers.CreateTool)
	api.PUT("/tools/:id", Logger(), controllers.UpdateTool)
	api.DELETE("/tools/:id", Logger(), controllers.DeleteTool)

	// Detalhes (admin grava, site lê)
	api.POST("/tool-details", Logger(), controllers.UpsertToolDetail)
	api.GET("/tool-details/by-tool/:toolId", Logger(), controllers.GetToolDetailByToolID)
	api.GET("/tool-details/:slug", Logger(), controllers.GetToolDetailBySlug)

	// Upload de imagens (admin)
	api.POST("/upload", Logger(), controllers.Upload)

	log.Printf("Routes initialized")
}
