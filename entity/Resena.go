package entity

type Resena struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	UsuarioID      uint    `gorm:"column:usuarioId;not null" json:"usuarioId"`
	CaminataID     uint    `gorm:"column:caminataId;not null" json:"caminataId"`
	Rating         int     `gorm:"not null" json:"rating"`
	Comentario     string  `gorm:"not null" json:"comentario"`
	RespuestaAdmin *string `gorm:"column:respuestaAdmin" json:"respuestaAdmin"`
	Fecha          string  `gorm:"not null" json:"fecha"`

	Usuario  Usuario  `gorm:"foreignKey:UsuarioID" json:"-"`
	Caminata Caminata `gorm:"foreignKey:CaminataID" json:"-"`
}

func (Resena) TableName() string { return "resenas" }
