package entity

type BlogComentario struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PostID    uint   `gorm:"column:postId;not null" json:"postId"`
	UsuarioID uint   `gorm:"column:usuarioId;not null" json:"usuarioId"`
	Texto     string `gorm:"not null" json:"texto"`
	Fecha     string `gorm:"not null" json:"fecha"`

	Post    BlogPost `gorm:"foreignKey:PostID" json:"-"`
	Usuario Usuario  `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (BlogComentario) TableName() string { return "blog_comentarios" }
