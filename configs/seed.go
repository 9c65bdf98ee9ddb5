package configs

import (
	"log"

	"github.com/madehun777/caminatas-backend/entity"

	"gorm.io/gorm"
)

// Seed inserta los datos de demostración una sola vez: cada tabla se llena
// solo si está vacía, así el arranque es idempotente entre reinicios.
// adminEmail es la cuenta que recibe el rol admin.
func Seed(db *gorm.DB, adminEmail string) error {
	if err := seedCaminatas(db); err != nil {
		return err
	}
	if err := seedUsuarios(db, adminEmail); err != nil {
		return err
	}
	if err := seedInscripciones(db); err != nil {
		return err
	}
	return nil
}

func seedCaminatas(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Caminata{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	caminatas := []entity.Caminata{
		{
			Nombre: "El Santuario de Cóndores", Tipo: "Deportiva", Modalidad: "Montaña",
			Dificultad: "Alta", Fecha: "2026-01-20",
			Lugar:  "Páramo de la Ventana, cerca al Nevado del Ruiz",
			Imagen: str("/img/santuario-1.jpg"),
			DescripcionCorta: str("Caminata de alta montaña de varios días para montañistas experimentados, con observación de cóndores y refugios."),
			Precio:           180000,
		},
		{
			Nombre: "Ruta del Café Escondido", Tipo: "Recreativa", Modalidad: "Senderismo",
			Dificultad: "Baja", Fecha: "2026-02-05",
			Lugar:  "Zona rural de Filandia, Quindío",
			Imagen: str("/img/carrusel-1.jpg"),
			DescripcionCorta: str("Paseo entre cafetales, bambúes y cascadas con degustación de café y almuerzo típico."),
			Precio:           95000,
		},
		{
			Nombre: "El Desafío de la Ciénaga", Tipo: "Deportiva", Modalidad: "Senderismo avanzado",
			Dificultad: "Alta", Fecha: "2026-03-10",
			Lugar:  "Humedales del Magdalena",
			Imagen: str("/img/cienaga-3.jpeg"),
			DescripcionCorta: str("Caminata de resistencia en manglares y humedales, ideal para entrenamiento de ultra-fondo."),
			Precio:           160000,
		},
		{
			Nombre: "Sendero de los Petroglifos", Tipo: "Recreativa", Modalidad: "Histórica",
			Dificultad: "Media", Fecha: "2026-04-15",
			Lugar:  "Cerca de San Agustín, Huila",
			Imagen: str("/img/petro-4.jpg"),
			DescripcionCorta: str("Recorrido entre selva y sitios arqueológicos con antiguos grabados indígenas."),
			Precio:           110000,
		},
		{
			Nombre: "Reto Extremo: Pico del Jaguar", Tipo: "Competencia", Modalidad: "Montaña",
			Dificultad: "Alta", Fecha: "2026-05-20",
			Lugar:  "Sierra Nevada de Santa Marta",
			Imagen: str("/img/pico-5.webp"),
			DescripcionCorta: str("Competencia de alta exigencia en selva y montaña, con patrocinador y registro de ganadores."),
			Precio:           250000,
		},
		{
			Nombre: "Oasis de la Guajira", Tipo: "Recreativa", Modalidad: "Paisaje desértico",
			Dificultad: "Media", Fecha: "2026-06-10",
			Lugar:  "Cabo de la Vela, La Guajira",
			Imagen: str("/img/carrusel-4.jpg"),
			DescripcionCorta: str("Caminata costera por paisajes semidesérticos y playas vírgenes con comunidades Wayuu."),
			Precio:           120000,
		},
		{
			Nombre: "Travesía de los Siete Colores", Tipo: "Deportiva", Modalidad: "Entrenamiento",
			Dificultad: "Media", Fecha: "2026-07-05",
			Lugar:  "Cordillera Oriental, Boyacá",
			Imagen: str("/img/cañon-7.jpeg"),
			DescripcionCorta: str("Ruta de subidas y bajadas entre montañas de colores minerales para ganar desnivel."),
			Precio:           140000,
		},
		{
			Nombre: "La Cascada Esmeralda", Tipo: "Recreativa", Modalidad: "Fluvial",
			Dificultad: "Baja", Fecha: "2026-08-12",
			Lugar:  "Cerca de Leticia, Amazonas",
			Imagen: str("/img/cascada-8.jpeg"),
			DescripcionCorta: str("Caminata corta por selva tropical hacia una cascada y piscina natural en el Amazonas."),
			Precio:           130000,
		},
		{
			Nombre: "El Balcón de Bogotá", Tipo: "Deportiva", Modalidad: "Entrenamiento urbano",
			Dificultad: "Media", Fecha: "2026-09-01",
			Lugar:  "Cerro cercano a Bogotá",
			Imagen: str("/img/potosi-9.jpeg"),
			DescripcionCorta: str("Desafío vertical de alta intensidad con vista panorámica, ideal para grupos corporativos."),
			Precio:           90000,
		},
		{
			Nombre: "La Laguna Misteriosa", Tipo: "Recreativa", Modalidad: "Mística",
			Dificultad: "Media", Fecha: "2026-10-05",
			Lugar:  "Páramos del Sumapaz",
			Imagen: str("/img/sumapaz-10.jpeg"),
			DescripcionCorta: str("Caminata a una laguna de altura rodeada de frailejones, con enfoque en conservación de páramo."),
			Precio:           125000,
		},
	}

	if err := db.Create(&caminatas).Error; err != nil {
		return err
	}
	log.Printf("seeded %d caminatas", len(caminatas))
	return nil
}

func seedUsuarios(db *gorm.DB, adminEmail string) error {
	var count int64
	if err := db.Model(&entity.Usuario{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	usuarios := []entity.Usuario{
		{
			Tipo: "natural", Nombre: "Usuario Prueba", Email: "user@demo.com",
			Telefono: str("3000000000"), Password: "123456",
			Documento: str("12345678"), FechaNacimiento: str("1990-01-01"),
			Rol: "usuario",
		},
		{
			Tipo: "juridica", Nombre: "Empresa Demo", Email: "empresa@demo.com",
			Telefono: str("3222222222"), Password: "empresa123",
			Nit: str("901234567"), Representante: str("Representante Demo"),
			NumeroParticipantes: num(25), Rol: "usuario",
		},
		{
			Tipo: "juridica", Nombre: "Admin Empresa", Email: adminEmail,
			Telefono: str("3111111111"), Password: "admin123",
			Nit: str("900123456"), Representante: str("Admin General"),
			NumeroParticipantes: num(50), Rol: "admin",
		},
	}

	if err := db.Create(&usuarios).Error; err != nil {
		return err
	}
	log.Printf("seeded %d usuarios", len(usuarios))
	return nil
}

func seedInscripciones(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Inscripcion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	inscripciones := []entity.Inscripcion{
		{UsuarioID: 1, CaminataID: 1, Estado: "completado", Fecha: "2025-12-01", Seguro: "basico"},
		{UsuarioID: 1, CaminataID: 2, Estado: "completado", Fecha: "2025-12-05", Seguro: "deportivo"},
		{UsuarioID: 1, CaminataID: 3, Estado: "completado", Fecha: "2025-12-08", Seguro: "basico"},
	}

	if err := db.Create(&inscripciones).Error; err != nil {
		return err
	}
	log.Printf("seeded %d inscripciones", len(inscripciones))
	return nil
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }
