package entity

// Tipo: "natural" | "juridica". Los campos opcionales dependen del tipo
// (documento/fechaNacimiento para naturales, nit/representante/numeroParticipantes
// para juridicas); el esquema no fuerza esa división.
type Usuario struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	Tipo                string  `gorm:"not null" json:"tipo"`
	Nombre              string  `gorm:"not null" json:"nombre"`
	Email               string  `gorm:"uniqueIndex;not null" json:"email"`
	Telefono            *string `json:"telefono"`
	Password            string  `gorm:"not null" json:"-"`
	Documento           *string `json:"documento"`
	FechaNacimiento     *string `gorm:"column:fechaNacimiento" json:"fechaNacimiento"`
	Nit                 *string `json:"nit"`
	Representante       *string `json:"representante"`
	NumeroParticipantes *int    `gorm:"column:numeroParticipantes" json:"numeroParticipantes"`
	Rol                 string  `gorm:"not null;default:usuario" json:"rol"`
}

func (Usuario) TableName() string { return "usuarios" }
