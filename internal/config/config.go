package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment. A .env
// file is honored when present so local runs do not need exported variables.
type Config struct {
	Port          string
	CatalogAPIURL string
	RedisAddr     string
	JWTSecret     string
	AdminUser     string
	AdminPass     string
}

// Load reads the environment, falling back to defaults suitable for local
// development. CATALOG_API_URL is the single base-URL override selecting the
// remote API host.
func Load() Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:          envOr("PORT", "8080"),
		CatalogAPIURL: envOr("CATALOG_API_URL", "http://localhost:5000"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		JWTSecret:     envOr("JWT_SECRET", "secret"),
		AdminUser:     envOr("ADMIN_USER", "admin"),
		AdminPass:     envOr("ADMIN_PASS", ""),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
