package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Storage backends selectable at startup. There is no runtime fallback
// between them; asking for the database backend when it is unreachable
// is a fatal startup error.
const (
	StorageMemory   = "memory"
	StorageDatabase = "database"
)

type Config struct {
	ServerPort     string
	GinMode        string
	LogLevel       string
	StorageBackend string
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	SQLitePath     string
}

func Load() *Config {
	// A local .env is optional; environment variables win either way.
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StorageBackend: getEnv("STORAGE_BACKEND", StorageMemory),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "taskuser"),
		DBPassword:     getEnv("DB_PASSWORD", "taskpassword"),
		DBName:         getEnv("DB_NAME", "task_rooms"),
		SQLitePath:     getEnv("SQLITE_PATH", "task_rooms.db"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
