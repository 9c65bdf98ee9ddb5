package controllers

import (
	"github.com/madehun777/caminatas-backend/entity"
	"github.com/madehun777/caminatas-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CaminataController struct{ DB *gorm.DB }

func NewCaminataController(db *gorm.DB) *CaminataController { return &CaminataController{DB: db} }

// GET /api/caminatas
func (cc *CaminataController) List(c *gin.Context) {
	var caminatas []entity.Caminata
	if err := cc.DB.Find(&caminatas).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if caminatas == nil {
		caminatas = []entity.Caminata{}
	}
	resp.OK(c, caminatas)
}
