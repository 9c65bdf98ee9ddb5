package entity

type Caminata struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Nombre           string  `gorm:"not null" json:"nombre"`
	Tipo             string  `gorm:"not null" json:"tipo"`
	Modalidad        string  `gorm:"not null" json:"modalidad"`
	Dificultad       string  `gorm:"not null" json:"dificultad"`
	Fecha            string  `gorm:"not null" json:"fecha"`
	Lugar            string  `gorm:"not null" json:"lugar"`
	Imagen           *string `json:"imagen"`
	DescripcionCorta *string `gorm:"column:descripcionCorta" json:"descripcionCorta"`
	Precio           int     `gorm:"not null" json:"precio"`
}

func (Caminata) TableName() string { return "caminatas" }
