package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// POST /api/upload
//
// Recebe um único arquivo no campo "image" e grava no diretório de
// uploads com prefixo de timestamp, que evita colisão de nomes. Qualquer
// byte é aceito; o tipo/tamanho não é validado.
func Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		RespondError(c, "Arquivo não enviado", http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(conf.UploadDir, 0o755); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	// filepath.Base derruba qualquer path embutido no nome original.
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst := filepath.Join(conf.UploadDir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	url := conf.PublicBaseURL + "/uploads/" + name
	log.Printf("Upload salvo: %s (%d bytes)", name, file.Size)
	RespondSuccess(c, gin.H{"url": url})
}
