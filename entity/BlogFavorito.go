package entity

type BlogFavorito struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PostID    uint `gorm:"column:postId;not null;uniqueIndex:idx_blog_favoritos_post_usuario" json:"postId"`
	UsuarioID uint `gorm:"column:usuarioId;not null;uniqueIndex:idx_blog_favoritos_post_usuario" json:"usuarioId"`

	Post    BlogPost `gorm:"foreignKey:PostID" json:"-"`
	Usuario Usuario  `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (BlogFavorito) TableName() string { return "blog_favoritos" }
