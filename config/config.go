package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hcm-analyzer/models"
)

// Storage drivers understood by STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverNone     = "none"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	StorageDriver string
	SQLitePath    string

	SystemName    string
	SystemVersion string
	Modules       []string
	AnalysisDepth string
	CatalogPath   string

	OutputDir     string
	OutputFormats []string
	ChromeBin     string
	PDFTimeout    time.Duration

	HTTPAddr       string
	MaxConcurrency int
	MaxRetries     int
	Debug          bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "hcm"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "hcm123"),
		PostgresDB:       getEnv("POSTGRES_DB", "hcm_analysis"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
		SQLitePath:    getEnv("SQLITE_PATH", "./output/hcm_analysis.db"),

		SystemName:    getEnv("SYSTEM_NAME", "Oracle HCM Cloud"),
		SystemVersion: getEnv("SYSTEM_VERSION", "22C"),
		Modules:       getEnvList("MODULES", nil),
		AnalysisDepth: getEnv("ANALYSIS_DEPTH", "comprehensive"),
		CatalogPath:   getEnv("CATALOG_PATH", ""),

		OutputDir:     getEnv("OUTPUT_DIR", "./output"),
		OutputFormats: getEnvList("OUTPUT_FORMATS", []string{"csv", "json", "html", "markdown"}),
		ChromeBin:     getEnv("CHROME_BIN", ""),
		PDFTimeout:    time.Duration(getEnvInt("PDF_TIMEOUT_SEC", 60)) * time.Second,

		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 3),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		Debug:          strings.EqualFold(getEnv("LOG_LEVEL", "info"), "debug"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// Analysis builds the per-run analysis settings. An empty module list means
// every module in the catalog.
func (c *Config) Analysis() models.AnalysisConfig {
	return models.AnalysisConfig{
		SystemName:                c.SystemName,
		SystemVersion:             c.SystemVersion,
		ModulesToAnalyze:          c.Modules,
		AnalysisDepth:             c.AnalysisDepth,
		IncludePerformanceMetrics: c.AnalysisDepth != "basic",
		IncludeSecurityAnalysis:   c.AnalysisDepth != "basic",
		IncludeBestPractices:      true,
		OutputFormats:             c.OutputFormats,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
