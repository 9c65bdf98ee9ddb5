package main

import (
	"fmt"
	"log"
	"os"

	"github.com/madehun777/caminatas-backend/configs"
	"github.com/madehun777/caminatas-backend/middlewares"
	"github.com/madehun777/caminatas-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.Connect(cfg.DBSource)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// migrate + seed
	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.Seed(db, cfg.AdminEmail); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// carpeta para imágenes del blog
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("cannot create upload dir: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Backend escuchando en", cfg.BaseURL)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
