package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort string

	// StoreBackend selects where records live: "remote" for the hosted
	// record service, "sqlite"/"postgres"/"mysql" for self-hosted SQL,
	// "memory" for an ephemeral in-process store.
	StoreBackend string

	// Remote record service
	RecordServiceURL     string
	RecordProjectID      string
	RecordPublicKey      string
	RecordRequestTimeout time.Duration

	// Self-hosted SQL
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	// Question sampling
	QuestionsPerSession int

	// Weekly report email (disabled when ReportFromEmail is empty)
	AWSRegion       string
	ReportFromEmail string
	ReportFromName  string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:           getEnv("PORT", "8080"),
		StoreBackend:         getEnv("STORE_BACKEND", "sqlite"),
		RecordServiceURL:     getEnv("RECORD_SERVICE_URL", ""),
		RecordProjectID:      getEnv("RECORD_PROJECT_ID", ""),
		RecordPublicKey:      getEnv("RECORD_PUBLIC_KEY", ""),
		RecordRequestTimeout: getEnvDuration("RECORD_TIMEOUT", 15*time.Second),
		DatabasePath:         getEnv("DB_PATH", "./learnquest.db"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		MigrationsPath:       getEnv("MIGRATIONS_PATH", "./migrations"),
		QuestionsPerSession:  getEnvInt("QUESTIONS_PER_SESSION", 10),
		AWSRegion:            getEnv("AWS_REGION", "us-east-1"),
		ReportFromEmail:      getEnv("REPORT_FROM_EMAIL", ""),
		ReportFromName:       getEnv("REPORT_FROM_NAME", "LearnQuest"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration reads a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
