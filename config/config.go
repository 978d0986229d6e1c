package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"` // no sqlite3 é o caminho do arquivo
	DbPass   string `json:"db_pass"`

	// Uploads de imagem (multipart) e URL pública devolvida ao admin.
	UploadDir     string `json:"upload_dir"`
	PublicBaseURL string `json:"public_base_url"`

	// Diretório do bundle estático do front (opcional).
	StaticDir string `json:"static_dir"`

	// Itens por página na listagem filtrada.
	PageSize int `json:"page_size"`

	// Versões antigas do catálogo não exigiam categoria; as novas exigem.
	// Fica configurável em vez de cravar um dos dois comportamentos.
	CategoryRequired *bool `json:"category_required"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}
	return WithDefaults(c)
}

// WithDefaults preenche os campos vazios (pra evitar nil/zero chato).
func WithDefaults(c Configuration) Configuration {
	if c.ApiPort == "" {
		c.ApiPort = "3001"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.UploadDir == "" {
		c.UploadDir = "uploads"
	}
	if c.PublicBaseURL == "" {
		c.PublicBaseURL = "http://localhost:" + c.ApiPort
	}
	if c.PageSize <= 0 {
		c.PageSize = 6
	}
	if c.CategoryRequired == nil {
		required := true
		c.CategoryRequired = &required
	}
	return c
}
