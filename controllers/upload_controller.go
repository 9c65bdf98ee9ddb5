package controllers

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/madehun777/caminatas-backend/pkg/resp"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	UploadDir string
	BaseURL   string
}

func NewUploadController(uploadDir, baseURL string) *UploadController {
	return &UploadController{UploadDir: uploadDir, BaseURL: baseURL}
}

// POST /api/blog/upload-image
// El archivo se guarda sin tocar; el nombre lleva milisegundos más un
// sufijo aleatorio para que dos subidas no colisionen.
func (uc *UploadController) SubirImagen(c *gin.Context) {
	file, err := c.FormFile("imagen")
	if err != nil {
		resp.BadRequest(c, "No se recibió archivo")
		return
	}

	filename := fmt.Sprintf("%d-%d%s",
		time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uc.UploadDir, filename)); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"url": uc.BaseURL + "/uploads/" + filename})
}
