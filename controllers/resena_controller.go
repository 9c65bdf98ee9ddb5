package controllers

import (
	"errors"

	"github.com/madehun777/caminatas-backend/entity"
	"github.com/madehun777/caminatas-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errSinParticipacion = errors.New("sin participación completada")

type CrearResenaRequest struct {
	UsuarioID  uint   `json:"usuarioId"`
	CaminataID uint   `json:"caminataId"`
	Rating     int    `json:"rating"`
	Comentario string `json:"comentario"`
}

type ResponderResenaRequest struct {
	AdminID   uint   `json:"adminId"`
	Respuesta string `json:"respuesta"`
}

type ResenaCaminata struct {
	ID             uint    `json:"id"`
	Rating         int     `json:"rating"`
	Comentario     string  `json:"comentario"`
	RespuestaAdmin *string `json:"respuestaAdmin"`
	Fecha          string  `json:"fecha"`
	AutorNombre    string  `json:"autorNombre"`
	CaminataNombre string  `json:"caminataNombre"`
}

type ResenaController struct{ DB *gorm.DB }

func NewResenaController(db *gorm.DB) *ResenaController { return &ResenaController{DB: db} }

// POST /api/resenas
// Solo puede reseñar quien tenga una inscripción "completado" para esa
// caminata. Chequeo e inserción van en una misma transacción para que dos
// envíos simultáneos no dupliquen la reseña a medias.
func (rc *ResenaController) Crear(c *gin.Context) {
	var req CrearResenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resena := entity.Resena{
		UsuarioID:  req.UsuarioID,
		CaminataID: req.CaminataID,
		Rating:     req.Rating,
		Comentario: req.Comentario,
		Fecha:      isoNow(),
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		var inscripcion entity.Inscripcion
		err := tx.Where("usuarioId = ? AND caminataId = ? AND estado = ?",
			req.UsuarioID, req.CaminataID, "completado").First(&inscripcion).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errSinParticipacion
		}
		if err != nil {
			return err
		}
		return tx.Create(&resena).Error
	})
	if err != nil {
		if errors.Is(err, errSinParticipacion) {
			resp.Forbidden(c, "Solo los usuarios que han participado en esta caminata pueden dejar reseñas.")
		} else {
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{"id": resena.ID})
}

// GET /api/caminatas/:id/resenas
func (rc *ResenaController) ListarPorCaminata(c *gin.Context) {
	caminataID := c.Param("id")

	var filas []ResenaCaminata
	err := rc.DB.Table("resenas r").
		Select("r.id, r.rating, r.comentario, r.respuestaAdmin AS respuesta_admin, r.fecha, "+
			"u.nombre AS autor_nombre, c.nombre AS caminata_nombre").
		Joins("JOIN usuarios u ON r.usuarioId = u.id").
		Joins("JOIN caminatas c ON r.caminataId = c.id").
		Where("r.caminataId = ?", caminataID).
		Order("r.fecha DESC").
		Scan(&filas).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if filas == nil {
		filas = []ResenaCaminata{}
	}
	resp.OK(c, filas)
}

// POST /api/resenas/:id/responder
// Actualizar una reseña inexistente no es un error: responde {updated: 0}.
func (rc *ResenaController) Responder(c *gin.Context) {
	resenaID := c.Param("id")

	var req ResponderResenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var admin entity.Usuario
	if err := rc.DB.First(&admin, req.AdminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Forbidden(c, "No autorizado")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	if admin.Rol != "admin" {
		resp.Forbidden(c, "No autorizado")
		return
	}

	res := rc.DB.Model(&entity.Resena{}).Where("id = ?", resenaID).
		Update("respuestaAdmin", req.Respuesta)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	resp.OK(c, gin.H{"updated": res.RowsAffected})
}
