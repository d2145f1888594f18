package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	Host        string
	DatabaseURL string

	// JWT Settings. The secret is read once here and never mutated;
	// rotation means a new process, not an in-place swap.
	JWTSecret    []byte
	UserTokenTTL time.Duration
	ShopTokenTTL time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "5000"),
		Host:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		UserTokenTTL: getDurationEnv("USER_TOKEN_TTL", 24*time.Hour),
		ShopTokenTTL: getDurationEnv("SHOP_TOKEN_TTL", 168*time.Hour),
	}

	if len(config.JWTSecret) == 0 {
		log.Fatal("JWT_SECRET must be set")
	}

	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration for %s: %v, using default %s", key, err, fallback)
		return fallback
	}
	return d
}
