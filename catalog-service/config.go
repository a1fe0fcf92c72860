package main

import "os"

// Config holds all environment variables for the catalog service.
type Config struct {
	Port      string // Service port (default: 3000)
	Env       string // development or production
	AppName   string // Store name surfaced via /api/env
	PublicDir string // Directory holding the storefront assets
}

// LoadConfig loads environment variables into a Config struct, applying
// defaults for anything unset.
func LoadConfig() *Config {
	cfg := &Config{
		Port:      os.Getenv("APP_PORT"),
		Env:       os.Getenv("APP_ENV"),
		AppName:   os.Getenv("APP_NAME"),
		PublicDir: os.Getenv("PUBLIC_DIR"),
	}

	if cfg.Port == "" {
		cfg.Port = os.Getenv("PORT")
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.AppName == "" {
		cfg.AppName = "Aurora Jewelry"
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}

	return cfg
}
