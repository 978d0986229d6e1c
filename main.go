package main

import (
	"log"
	"os"

	"superpf3/config"
	"superpf3/controllers"
	dbpkg "superpf3/db"
	"superpf3/router"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	var cfg config.Configuration
	if _, err := os.Stat(configPath); err == nil {
		cfg = config.Get(configPath)
	} else {
		log.Printf("config %s não encontrado, usando defaults", configPath)
		cfg = config.WithDefaults(config.Configuration{})
	}

	dbpkg.SetConfigurations(cfg)
	controllers.SetConfigurations(cfg)

	db, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := dbpkg.Seed(db); err != nil {
		log.Fatal(err)
	}

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))
	router.Initialize(r, cfg)

	log.Printf("API rodando em http://localhost:%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
