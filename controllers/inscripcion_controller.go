package controllers

import (
	"github.com/madehun777/caminatas-backend/entity"
	"github.com/madehun777/caminatas-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CrearInscripcionRequest struct {
	UsuarioID  uint   `json:"usuarioId"`
	CaminataID uint   `json:"caminataId"`
	Seguro     string `json:"seguro"`
}

type InscripcionCaminata struct {
	InscripcionID uint   `json:"inscripcionId"`
	Fecha         string `json:"fecha"`
	Estado        string `json:"estado"`
	Seguro        string `json:"seguro"`
	CaminataID    uint   `json:"caminataId"`
	Nombre        string `json:"nombre"`
}

type InscripcionController struct{ DB *gorm.DB }

func NewInscripcionController(db *gorm.DB) *InscripcionController {
	return &InscripcionController{DB: db}
}

// POST /api/inscripciones
func (ic *InscripcionController) Crear(c *gin.Context) {
	var req CrearInscripcionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.UsuarioID == 0 || req.CaminataID == 0 || req.Seguro == "" {
		resp.BadRequest(c, "Datos incompletos")
		return
	}

	inscripcion := entity.Inscripcion{
		UsuarioID:  req.UsuarioID,
		CaminataID: req.CaminataID,
		Estado:     "inscrito",
		Fecha:      isoToday(),
		Seguro:     req.Seguro,
	}
	if err := ic.DB.Create(&inscripcion).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": inscripcion.ID})
}

// GET /api/usuarios/:id/caminatas
func (ic *InscripcionController) ListarPorUsuario(c *gin.Context) {
	usuarioID := c.Param("id")

	var filas []InscripcionCaminata
	err := ic.DB.Table("inscripciones i").
		Select("i.id AS inscripcion_id, i.fecha, i.estado, i.seguro, c.id AS caminata_id, c.nombre").
		Joins("JOIN caminatas c ON i.caminataId = c.id").
		Where("i.usuarioId = ?", usuarioID).
		Scan(&filas).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if filas == nil {
		filas = []InscripcionCaminata{}
	}
	resp.OK(c, filas)
}
