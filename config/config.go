package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DatabaseDriver string
	DatabaseURL    string
	Port           string
}

// ConfigInstance is the global configuration instance
var ConfigInstance *Config

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DatabaseDriver: os.Getenv("DB_DRIVER"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           os.Getenv("PORT"),
	}

	if config.Port == "" {
		config.Port = "8080"
	}

	if config.DatabaseDriver == "" {
		config.DatabaseDriver = "mysql"
	}
	if config.DatabaseDriver != "mysql" && config.DatabaseDriver != "sqlite3" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", config.DatabaseDriver)
	}

	if config.DatabaseURL == "" {
		switch config.DatabaseDriver {
		case "sqlite3":
			config.DatabaseURL = "unihub.db"
		default:
			config.DatabaseURL = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?parseTime=true",
				os.Getenv("DB_USER"),
				os.Getenv("DB_PASSWORD"),
				os.Getenv("DB_HOST"),
				os.Getenv("DB_PORT"),
				os.Getenv("DB_NAME"),
			)
		}
	}

	return config, nil
}
