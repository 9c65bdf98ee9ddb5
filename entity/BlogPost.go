package entity

type BlogPost struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UsuarioID uint    `gorm:"column:usuarioId;not null" json:"usuarioId"`
	Titulo    string  `gorm:"not null" json:"titulo"`
	Contenido string  `gorm:"not null" json:"contenido"`
	ImagenURL *string `gorm:"column:imagenUrl" json:"imagenUrl"`
	VideoURL  *string `gorm:"column:videoUrl" json:"videoUrl"`
	Fecha     string  `gorm:"not null" json:"fecha"`

	Usuario Usuario `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (BlogPost) TableName() string { return "blog_posts" }
