package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Service     string
	Port        string
	DatabaseURL string
	AppEnv      string
	BaseURL     string
	LogFile     string
}

// Load reads configuration for the named service ("shorturl" or "todo").
// DATABASE_URL wins when set; otherwise the database file lives in
// DATA_DIR when that directory exists (the mounted volume case) and in
// the working directory when it does not.
func Load(service string) *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	defaultPort := "8001"
	if service == "todo" {
		defaultPort = "8002"
	}

	return &Config{
		Service:     service,
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", "file:"+databasePath(service)),
		AppEnv:      getEnv("APP_ENV", "local"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8001"),
		LogFile:     getEnv("LOG_FILE", ""),
	}
}

func databasePath(service string) string {
	dataDir := getEnv("DATA_DIR", "/app/data")
	if info, err := os.Stat(dataDir); err == nil && info.IsDir() {
		return filepath.Join(dataDir, service+".db")
	}
	return service + ".db"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
