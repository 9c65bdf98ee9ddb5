package configs

import (
	"github.com/madehun777/caminatas-backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect abre la base sqlite y devuelve el handle; el proceso lo inyecta
// en cada controller en vez de usar un singleton global.
func Connect(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Caminata{}, &entity.Usuario{}, &entity.Inscripcion{}, &entity.Resena{},
		&entity.BlogPost{}, &entity.BlogComentario{}, &entity.BlogRating{}, &entity.BlogFavorito{},
	)
}
