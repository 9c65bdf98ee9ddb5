package controllers

import (
	"errors"

	"github.com/madehun777/caminatas-backend/entity"
	"github.com/madehun777/caminatas-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegistroRequest struct {
	Tipo                string `json:"tipo"`
	Nombre              string `json:"nombre"`
	Email               string `json:"email"`
	Telefono            string `json:"telefono"`
	Password            string `json:"password"`
	Documento           string `json:"documento"`
	FechaNacimiento     string `json:"fechaNacimiento"`
	Nit                 string `json:"nit"`
	Representante       string `json:"representante"`
	NumeroParticipantes int    `json:"numeroParticipantes"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

// POST /api/usuarios
// Un email repetido no se pre-valida: la restricción UNIQUE del store
// responde y su mensaje se devuelve tal cual (500).
func (a *AuthController) Registro(c *gin.Context) {
	var req RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	usuario := entity.Usuario{
		Tipo:                req.Tipo,
		Nombre:              req.Nombre,
		Email:               req.Email,
		Telefono:            nullIfEmpty(req.Telefono),
		Password:            req.Password,
		Documento:           nullIfEmpty(req.Documento),
		FechaNacimiento:     nullIfEmpty(req.FechaNacimiento),
		Nit:                 nullIfEmpty(req.Nit),
		Representante:       nullIfEmpty(req.Representante),
		NumeroParticipantes: nullIfZero(req.NumeroParticipantes),
		Rol:                 "usuario",
	}

	if err := a.DB.Create(&usuario).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": usuario.ID})
}

// POST /api/login
// Comparación en texto plano, igual que el contrato original. No hay token
// ni sesión: el cliente reenvía su identidad en cada llamada privilegiada.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var usuario entity.Usuario
	err := a.DB.Where("email = ? AND password = ?", req.Email, req.Password).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Unauthorized(c, "Credenciales inválidas")
		} else {
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{
		"id":                  usuario.ID,
		"nombre":              usuario.Nombre,
		"email":               usuario.Email,
		"tipo":                usuario.Tipo,
		"numeroParticipantes": usuario.NumeroParticipantes,
		"rol":                 usuario.Rol,
	})
}
