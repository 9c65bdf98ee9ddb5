package entity

// Estado observado: "inscrito" | "completado". Solo el seed crea filas
// "completado"; el endpoint de creación siempre inserta "inscrito".
type Inscripcion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UsuarioID  uint   `gorm:"column:usuarioId;not null" json:"usuarioId"`
	CaminataID uint   `gorm:"column:caminataId;not null" json:"caminataId"`
	Estado     string `gorm:"not null" json:"estado"`
	Fecha      string `gorm:"not null" json:"fecha"`
	Seguro     string `gorm:"not null" json:"seguro"`

	Usuario  Usuario  `gorm:"foreignKey:UsuarioID" json:"-"`
	Caminata Caminata `gorm:"foreignKey:CaminataID" json:"-"`
}

func (Inscripcion) TableName() string { return "inscripciones" }
