package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var SecretKey []byte

func Init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, reading from environment: %v", err)
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT secret key not set")
	}
	SecretKey = []byte(secret)
}

func DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "qrcafe"),
	)
}

func ServerPort() string {
	return ":" + getEnv("SERVER_PORT", "8080")
}

// MenuBaseURL is the public address encoded into table QR codes.
func MenuBaseURL() string {
	return getEnv("MENU_BASE_URL", "http://localhost:3000")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
