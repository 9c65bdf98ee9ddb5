package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/madehun777/caminatas-backend/entity"

	"github.com/stretchr/testify/assert"
)

func TestCrearResena_SinParticipacion(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)

	usuario := createTestUsuario(db, "caminante@demo.com", "usuario")
	caminata := createTestCaminata(db, "La Cascada Esmeralda")
	// inscrito pero no completado
	createTestInscripcion(db, usuario.ID, caminata.ID, "inscrito")

	w := performJSON(r, http.MethodPost, "/api/resenas", map[string]any{
		"usuarioId":  usuario.ID,
		"caminataId": caminata.ID,
		"rating":     5,
		"comentario": "Espectacular",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t,
		"Solo los usuarios que han participado en esta caminata pueden dejar reseñas.",
		decodeBody(t, w)["error"])

	var count int64
	db.Model(&entity.Resena{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCrearResena_ConParticipacionCompletada(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)

	usuario := createTestUsuario(db, "caminante@demo.com", "usuario")
	caminata := createTestCaminata(db, "La Cascada Esmeralda")
	createTestInscripcion(db, usuario.ID, caminata.ID, "completado")

	w := performJSON(r, http.MethodPost, "/api/resenas", map[string]any{
		"usuarioId":  usuario.ID,
		"caminataId": caminata.ID,
		"rating":     5,
		"comentario": "Espectacular",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.NotZero(t, body["id"])

	var resena entity.Resena
	assert.NoError(t, db.First(&resena, uint(body["id"].(float64))).Error)
	assert.Equal(t, 5, resena.Rating)
	assert.Nil(t, resena.RespuestaAdmin)
	assert.NotEmpty(t, resena.Fecha)
}

func TestListarResenas_OrdenDescendente(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)

	usuario := createTestUsuario(db, "caminante@demo.com", "usuario")
	caminata := createTestCaminata(db, "El Balcón de Bogotá")

	fechas := []string{
		"2026-01-10T08:00:00.000Z",
		"2026-03-02T12:30:00.000Z",
		"2026-02-15T19:45:00.000Z",
	}
	for i, fecha := range fechas {
		db.Create(&entity.Resena{
			UsuarioID:  usuario.ID,
			CaminataID: caminata.ID,
			Rating:     i + 1,
			Comentario: fmt.Sprintf("comentario %d", i),
			Fecha:      fecha,
		})
	}

	w := performJSON(r, http.MethodGet, fmt.Sprintf("/api/caminatas/%d/resenas", caminata.ID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	filas := decodeList(t, w)
	assert.Len(t, filas, 3)
	assert.Equal(t, "2026-03-02T12:30:00.000Z", filas[0]["fecha"])
	assert.Equal(t, "2026-02-15T19:45:00.000Z", filas[1]["fecha"])
	assert.Equal(t, "2026-01-10T08:00:00.000Z", filas[2]["fecha"])
	assert.Equal(t, usuario.Nombre, filas[0]["autorNombre"])
	assert.Equal(t, "El Balcón de Bogotá", filas[0]["caminataNombre"])
}

func TestResponderResena_NoAutorizado(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)

	usuario := createTestUsuario(db, "comun@demo.com", "usuario")
	caminata := createTestCaminata(db, "La Laguna Misteriosa")
	resena := entity.Resena{
		UsuarioID: usuario.ID, CaminataID: caminata.ID,
		Rating: 4, Comentario: "Muy buena", Fecha: isoNow(),
	}
	db.Create(&resena)

	w := performJSON(r, http.MethodPost, fmt.Sprintf("/api/resenas/%d/responder", resena.ID),
		map[string]any{"adminId": usuario.ID, "respuesta": "Gracias"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "No autorizado", decodeBody(t, w)["error"])

	// la reseña queda intacta
	var recargada entity.Resena
	db.First(&recargada, resena.ID)
	assert.Nil(t, recargada.RespuestaAdmin)
}

func TestResponderResena_AdminInexistente(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)

	w := performJSON(r, http.MethodPost, "/api/resenas/1/responder",
		map[string]any{"adminId": 999, "respuesta": "Gracias"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResponderResena_Admin(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)

	admin := createTestUsuario(db, "admin@demo.com", "admin")
	usuario := createTestUsuario(db, "comun@demo.com", "usuario")
	caminata := createTestCaminata(db, "La Laguna Misteriosa")
	resena := entity.Resena{
		UsuarioID: usuario.ID, CaminataID: caminata.ID,
		Rating: 4, Comentario: "Muy buena", Fecha: isoNow(),
	}
	db.Create(&resena)

	w := performJSON(r, http.MethodPost, fmt.Sprintf("/api/resenas/%d/responder", resena.ID),
		map[string]any{"adminId": admin.ID, "respuesta": "Gracias por acompañarnos"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["updated"])

	var recargada entity.Resena
	db.First(&recargada, resena.ID)
	if assert.NotNil(t, recargada.RespuestaAdmin) {
		assert.Equal(t, "Gracias por acompañarnos", *recargada.RespuestaAdmin)
	}
}

func TestResponderResena_ResenaInexistente(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)

	admin := createTestUsuario(db, "admin@demo.com", "admin")

	w := performJSON(r, http.MethodPost, "/api/resenas/424242/responder",
		map[string]any{"adminId": admin.ID, "respuesta": "Gracias"})

	// actualizar una reseña que no existe no es error: updated 0
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeBody(t, w)["updated"])
}
