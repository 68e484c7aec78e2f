package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything read from the environment at process start.
// Nothing here is reloaded at runtime.
type Config struct {
	DB DBConfig

	Port       string
	CORSOrigin string
	LogLevel   string
	LogFile    string
	GinMode    string
}

// DBConfig is the static connection configuration for the storefront schema.
type DBConfig struct {
	Host     string
	Name     string
	User     string
	Password string
	Charset  string

	// DSN, when set, is used verbatim and the fields above are ignored.
	DSN string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Could not find or load .env file. Relying on system environment variables.")
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		DB: DBConfig{
			Host:     getenv("DB_HOST", "localhost:3306"),
			Name:     getenv("DB_NAME", "tienda_vr_dunz"),
			User:     getenv("DB_USER", "root"),
			Password: os.Getenv("DB_PASS"),
			Charset:  getenv("DB_CHARSET", "utf8mb4"),
			DSN:      os.Getenv("DB_DSN_PRIMARY"),
		},
		Port:       getenv("PORT", "8080"),
		CORSOrigin: getenv("CORS_ORIGIN", "*"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogFile:    os.Getenv("LOG_FILE"),
		GinMode:    os.Getenv("GIN_MODE"),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
