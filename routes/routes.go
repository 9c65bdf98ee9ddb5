package routes

import (
	"github.com/madehun777/caminatas-backend/configs"
	"github.com/madehun777/caminatas-backend/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	caminataCtrl := controllers.NewCaminataController(db)
	authCtrl := controllers.NewAuthController(db)
	inscripcionCtrl := controllers.NewInscripcionController(db)
	resenaCtrl := controllers.NewResenaController(db)
	blogCtrl := controllers.NewBlogController(db)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir, cfg.BaseURL)

	api := r.Group("/api")
	{
		api.GET("/caminatas", caminataCtrl.List)
		api.POST("/usuarios", authCtrl.Registro)
		api.POST("/login", authCtrl.Login)

		api.GET("/usuarios/:id/caminatas", inscripcionCtrl.ListarPorUsuario)
		api.POST("/inscripciones", inscripcionCtrl.Crear)

		api.POST("/resenas", resenaCtrl.Crear)
		api.GET("/caminatas/:id/resenas", resenaCtrl.ListarPorCaminata)
		api.POST("/resenas/:id/responder", resenaCtrl.Responder)

		blog := api.Group("/blog")
		{
			blog.POST("/upload-image", uploadCtrl.SubirImagen)
			blog.GET("/posts", blogCtrl.ListarPosts)
			blog.POST("/posts", blogCtrl.CrearPost)
			blog.POST("/posts/:id/comentarios", blogCtrl.CrearComentario)
			blog.GET("/posts/:id/comentarios", blogCtrl.ListarComentarios)
			blog.POST("/posts/:id/rating", blogCtrl.CalificarPost)
			blog.POST("/posts/:id/favorito", blogCtrl.AlternarFavorito)
		}

		api.GET("/usuarios/:id/favoritos", blogCtrl.ListarFavoritos)
	}
}
