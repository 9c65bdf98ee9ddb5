package entity

// Un usuario tiene a lo sumo un rating por post; reenviar sobrescribe el valor.
type BlogRating struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PostID    uint `gorm:"column:postId;not null;uniqueIndex:idx_blog_ratings_post_usuario" json:"postId"`
	UsuarioID uint `gorm:"column:usuarioId;not null;uniqueIndex:idx_blog_ratings_post_usuario" json:"usuarioId"`
	Rating    int  `gorm:"not null" json:"rating"`

	Post    BlogPost `gorm:"foreignKey:PostID" json:"-"`
	Usuario Usuario  `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (BlogRating) TableName() string { return "blog_ratings" }
