package db

import (
	"log"
	"os"
	"path/filepath"

	"superpf3/config"
	"superpf3/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre conexão com DB (sqlite3 por padrão). O main chama Migrate
// na sequência, as tabelas sempre existem antes do primeiro request.
func Connect() (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		log.Println("Utilizando conexão com o postgresql...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		log.Println("Utilizando conexão com o sqlite3...")
		path := conf.DbName
		if path == "" {
			path = "db/database.db"
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		db, err = gorm.Open("sqlite3", path)
	}

	if err != nil {
		log.Println("Got error when connect database, the error is: " + err.Error())
		return nil, err
	}

	// Chaves estrangeiras não vêm ligadas por padrão no sqlite.
	if database != "postgres" && database != "postgresql" {
		db.Exec("PRAGMA foreign_keys = ON")
	}

	// Log em dev
	db.LogMode(getenv("DB_LOG", "0") == "1")

	return db, nil
}

// Migrate cria as tabelas do catálogo e os índices que garantem o 1:1
// (unique em tool_id) e a unicidade do slug.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Tool{},
		&models.ToolDetail{},
	).Error; err != nil {
		return err
	}

	if err := db.Model(&models.ToolDetail{}).
		AddUniqueIndex("idx_tool_details_slug", "slug").Error; err != nil {
		return err
	}
	if err := db.Model(&models.ToolDetail{}).
		AddUniqueIndex("idx_tool_details_tool_id", "tool_id").Error; err != nil {
		return err
	}
	// O sqlite não aceita ALTER TABLE ... ADD CONSTRAINT; nesse dialeto a
	// referência tool_id -> tools é garantida no handler do upsert.
	if db.Dialect().GetName() == "postgres" {
		if err := db.Model(&models.ToolDetail{}).
			AddForeignKey("tool_id", "tools(id)", "RESTRICT", "RESTRICT").Error; err != nil {
			return err
		}
	}

	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
