package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/madehun777/caminatas-backend/configs"
	"github.com/madehun777/caminatas-backend/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	caminataCtrl := NewCaminataController(db)
	authCtrl := NewAuthController(db)
	inscripcionCtrl := NewInscripcionController(db)
	resenaCtrl := NewResenaController(db)
	blogCtrl := NewBlogController(db)

	api := r.Group("/api")
	api.GET("/caminatas", caminataCtrl.List)
	api.POST("/usuarios", authCtrl.Registro)
	api.POST("/login", authCtrl.Login)
	api.GET("/usuarios/:id/caminatas", inscripcionCtrl.ListarPorUsuario)
	api.POST("/inscripciones", inscripcionCtrl.Crear)
	api.POST("/resenas", resenaCtrl.Crear)
	api.GET("/caminatas/:id/resenas", resenaCtrl.ListarPorCaminata)
	api.POST("/resenas/:id/responder", resenaCtrl.Responder)
	api.GET("/blog/posts", blogCtrl.ListarPosts)
	api.POST("/blog/posts", blogCtrl.CrearPost)
	api.POST("/blog/posts/:id/comentarios", blogCtrl.CrearComentario)
	api.GET("/blog/posts/:id/comentarios", blogCtrl.ListarComentarios)
	api.POST("/blog/posts/:id/rating", blogCtrl.CalificarPost)
	api.POST("/blog/posts/:id/favorito", blogCtrl.AlternarFavorito)
	api.GET("/usuarios/:id/favoritos", blogCtrl.ListarFavoritos)

	return r
}

func performJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return out
}

func createTestUsuario(db *gorm.DB, email, rol string) *entity.Usuario {
	usuario := &entity.Usuario{
		Tipo:     "natural",
		Nombre:   "Caminante " + email,
		Email:    email,
		Password: "secreto",
		Rol:      rol,
	}
	db.Create(usuario)
	return usuario
}

func createTestCaminata(db *gorm.DB, nombre string) *entity.Caminata {
	caminata := &entity.Caminata{
		Nombre:     nombre,
		Tipo:       "Recreativa",
		Modalidad:  "Senderismo",
		Dificultad: "Baja",
		Fecha:      "2026-03-01",
		Lugar:      "Quindío",
		Precio:     100000,
	}
	db.Create(caminata)
	return caminata
}

func createTestInscripcion(db *gorm.DB, usuarioID, caminataID uint, estado string) *entity.Inscripcion {
	inscripcion := &entity.Inscripcion{
		UsuarioID:  usuarioID,
		CaminataID: caminataID,
		Estado:     estado,
		Fecha:      "2025-12-01",
		Seguro:     "basico",
	}
	db.Create(inscripcion)
	return inscripcion
}

func createTestPost(db *gorm.DB, usuarioID uint, titulo, fecha string) *entity.BlogPost {
	post := &entity.BlogPost{
		UsuarioID: usuarioID,
		Titulo:    titulo,
		Contenido: "Contenido de " + titulo,
		Fecha:     fecha,
	}
	db.Create(post)
	return post
}
