// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables win over file contents.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:   ":8080",
		DBPath: "storefront.sqlite3",
	}
	if v := os.Getenv("STOREFRONT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STOREFRONT_DB"); v != "" {
		cfg.DBPath = v
	}
	cfg.JWTSecret = os.Getenv("STOREFRONT_JWT_SECRET")
	return cfg
}
