package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverJSON     = "json"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Extract  ExtractConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               int
	Debug              bool
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins []string
	StaticDir          string
}

type StoreConfig struct {
	Driver        string // "json" or "postgres"
	QuestionsFile string
}

type DatabaseConfig struct {
	Connection string
}

type ExtractConfig struct {
	PDFPath           string
	ExtractedTextFile string // empty disables the raw text dump
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnvAsInt("APP_PORT", 5000),
			Debug:              getEnvAsBool("APP_DEBUG", false),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			StaticDir:          getEnv("STATIC_DIR", "./public"),
		},
		Store: StoreConfig{
			Driver:        storeDriver(getEnv("STORE_DRIVER", StoreDriverJSON)),
			QuestionsFile: getEnv("QUESTIONS_FILE", "questions.json"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Extract: ExtractConfig{
			PDFPath:           getEnv("PDF_PATH", "exam.pdf"),
			ExtractedTextFile: getEnv("EXTRACTED_TEXT_FILE", "extracted_text.txt"),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "exam-variation-be"),
		},
	}
}

func storeDriver(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return StoreDriverJSON
	}
	return value
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated value, dropping blank entries.
func getEnvAsList(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	var values []string
	for _, v := range strings.Split(strValue, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
