package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource   string
	Port       string
	UploadDir  string
	BaseURL    string
	AdminEmail string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment defaults")
	}

	return &Config{
		DBSource:   getEnv("DB_SOURCE", "caminatas.db"),
		Port:       getEnv("PORT", "4000"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:4000"),
		AdminEmail: getEnv("ADMIN_EMAIL", "admin@demo.com"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
