package controllers

import (
	"errors"
	"strconv"

	"github.com/madehun777/caminatas-backend/entity"
	"github.com/madehun777/caminatas-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CrearPostRequest struct {
	UsuarioID uint   `json:"usuarioId"`
	Titulo    string `json:"titulo"`
	Contenido string `json:"contenido"`
	ImagenURL string `json:"imagenUrl"`
	VideoURL  string `json:"videoUrl"`
}

type CrearComentarioRequest struct {
	UsuarioID uint   `json:"usuarioId"`
	Texto     string `json:"texto"`
}

type RatingRequest struct {
	UsuarioID uint `json:"usuarioId"`
	Rating    int  `json:"rating"`
}

type FavoritoRequest struct {
	UsuarioID uint `json:"usuarioId"`
}

type PostListado struct {
	ID               uint    `json:"id"`
	Titulo           string  `json:"titulo"`
	Contenido        string  `json:"contenido"`
	ImagenURL        *string `json:"imagenUrl"`
	VideoURL         *string `json:"videoUrl"`
	Fecha            string  `json:"fecha"`
	AutorNombre      string  `json:"autorNombre"`
	RatingPromedio   float64 `json:"ratingPromedio"`
	TotalComentarios int     `json:"totalComentarios"`
}

type ComentarioListado struct {
	ID          uint   `json:"id"`
	Texto       string `json:"texto"`
	Fecha       string `json:"fecha"`
	AutorNombre string `json:"autorNombre"`
}

type FavoritoListado struct {
	ID          uint   `json:"id"`
	PostID      uint   `json:"postId"`
	Titulo      string `json:"titulo"`
	Fecha       string `json:"fecha"`
	AutorNombre string `json:"autorNombre"`
}

type BlogController struct{ DB *gorm.DB }

func NewBlogController(db *gorm.DB) *BlogController { return &BlogController{DB: db} }

// GET /api/blog/posts
func (bc *BlogController) ListarPosts(c *gin.Context) {
	var filas []PostListado
	err := bc.DB.Table("blog_posts p").
		Select("p.id, p.titulo, p.contenido, p.imagenUrl AS imagen_url, p.videoUrl AS video_url, "+
			"p.fecha, u.nombre AS autor_nombre, "+
			"IFNULL(AVG(r.rating), 0) AS rating_promedio, "+
			"COUNT(DISTINCT bc.id) AS total_comentarios").
		Joins("JOIN usuarios u ON p.usuarioId = u.id").
		Joins("LEFT JOIN blog_ratings r ON r.postId = p.id").
		Joins("LEFT JOIN blog_comentarios bc ON bc.postId = p.id").
		Group("p.id").
		Order("p.fecha DESC").
		Scan(&filas).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if filas == nil {
		filas = []PostListado{}
	}
	resp.OK(c, filas)
}

// POST /api/blog/posts
func (bc *BlogController) CrearPost(c *gin.Context) {
	var req CrearPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.UsuarioID == 0 || req.Titulo == "" || req.Contenido == "" {
		resp.BadRequest(c, "Datos incompletos")
		return
	}

	post := entity.BlogPost{
		UsuarioID: req.UsuarioID,
		Titulo:    req.Titulo,
		Contenido: req.Contenido,
		ImagenURL: nullIfEmpty(req.ImagenURL),
		VideoURL:  nullIfEmpty(req.VideoURL),
		Fecha:     isoNow(),
	}
	if err := bc.DB.Create(&post).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": post.ID})
}

// POST /api/blog/posts/:id/comentarios
func (bc *BlogController) CrearComentario(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Id inválido")
		return
	}

	var req CrearComentarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.UsuarioID == 0 || req.Texto == "" {
		resp.BadRequest(c, "Datos incompletos")
		return
	}

	comentario := entity.BlogComentario{
		PostID:    uint(postID),
		UsuarioID: req.UsuarioID,
		Texto:     req.Texto,
		Fecha:     isoNow(),
	}
	if err := bc.DB.Create(&comentario).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": comentario.ID})
}

// GET /api/blog/posts/:id/comentarios
func (bc *BlogController) ListarComentarios(c *gin.Context) {
	postID := c.Param("id")

	var filas []ComentarioListado
	err := bc.DB.Table("blog_comentarios bc").
		Select("bc.id, bc.texto, bc.fecha, u.nombre AS autor_nombre").
		Joins("JOIN usuarios u ON bc.usuarioId = u.id").
		Where("bc.postId = ?", postID).
		Order("bc.fecha ASC").
		Scan(&filas).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if filas == nil {
		filas = []ComentarioListado{}
	}
	resp.OK(c, filas)
}

// POST /api/blog/posts/:id/rating
// Un rating 0 cuenta como dato incompleto; reenviar sobrescribe el anterior.
func (bc *BlogController) CalificarPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Id inválido")
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.UsuarioID == 0 || req.Rating == 0 {
		resp.BadRequest(c, "Datos incompletos")
		return
	}

	rating := entity.BlogRating{
		PostID:    uint(postID),
		UsuarioID: req.UsuarioID,
		Rating:    req.Rating,
	}
	err = bc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "postId"}, {Name: "usuarioId"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating"}),
	}).Create(&rating).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /api/blog/posts/:id/favorito
// Alterna: la primera llamada marca el post como favorito, la siguiente lo quita.
func (bc *BlogController) AlternarFavorito(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Id inválido")
		return
	}

	var req FavoritoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.UsuarioID == 0 {
		resp.BadRequest(c, "Datos incompletos")
		return
	}

	marcado := false
	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		var existente entity.BlogFavorito
		err := tx.Where("postId = ? AND usuarioId = ?", postID, req.UsuarioID).First(&existente).Error
		if err == nil {
			return tx.Delete(&existente).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		marcado = true
		return tx.Create(&entity.BlogFavorito{PostID: uint(postID), UsuarioID: req.UsuarioID}).Error
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"favorito": marcado})
}

// GET /api/usuarios/:id/favoritos
func (bc *BlogController) ListarFavoritos(c *gin.Context) {
	usuarioID := c.Param("id")

	var filas []FavoritoListado
	err := bc.DB.Table("blog_favoritos f").
		Select("f.id, p.id AS post_id, p.titulo, p.fecha, u.nombre AS autor_nombre").
		Joins("JOIN blog_posts p ON f.postId = p.id").
		Joins("JOIN usuarios u ON p.usuarioId = u.id").
		Where("f.usuarioId = ?", usuarioID).
		Order("p.fecha DESC").
		Scan(&filas).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if filas == nil {
		filas = []FavoritoListado{}
	}
	resp.OK(c, filas)
}
