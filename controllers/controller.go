package controllers

import (
	"github.com/gin-gonic/gin"

	"superpf3/config"
)

var conf config.Configuration

// SetConfigurations injeta a configuração carregada no main (mesmo
// esquema do pacote db).
func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}
