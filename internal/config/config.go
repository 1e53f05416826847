package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBDialect  string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBDSN      string

	// Seed generation
	SeedPassword   string
	SeedBcryptCost int
	SeedProfile    string
	SeedRandom     int64

	// Mock API
	JWTSecret   string
	JWTExpiry   time.Duration
	Port        string
	CORSOrigins string

	// Browser verification
	FrontendURL     string
	BrowserHeadless bool
	BrowserBin      string
	ScreenshotDir   string
	BrowserTimeout  time.Duration

	// Observability
	LogLevel  slog.Level
	SentryDSN string
	AppEnv    string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDialect:  getEnv("DB_DIALECT", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", ""),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "service_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBDSN:      getEnv("DB_DSN", ""),

		SeedPassword:   getEnv("SEED_PASSWORD", "password123"),
		SeedBcryptCost: parseInt(getEnv("SEED_BCRYPT_COST", "10"), 10),
		SeedProfile:    getEnv("SEED_PROFILE", ""),
		SeedRandom:     int64(parseInt(getEnv("SEED_RANDOM", "0"), 0)),

		JWTSecret:   getEnv("JWT_SECRET", "dev-seed-secret"),
		JWTExpiry:   parseDuration(getEnv("JWT_EXPIRY", "8h"), 8*time.Hour),
		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		FrontendURL:     strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		BrowserHeadless: parseBool(getEnv("BROWSER_HEADLESS", "true"), true),
		BrowserBin:      getEnv("BROWSER_BIN", ""),
		ScreenshotDir:   getEnv("SCREENSHOT_DIR", "verification"),
		BrowserTimeout:  parseDuration(getEnv("BROWSER_TIMEOUT", "30s"), 30*time.Second),

		LogLevel:  parseLevel(getEnv("LOG_LEVEL", "info")),
		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
}

// DSN builds a driver connection string for the configured dialect unless
// DB_DSN overrides it.
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	switch c.DBDialect {
	case "postgres", "postgresql", "pg":
		return "host=" + c.DBHost +
			" user=" + c.DBUser +
			" password=" + c.DBPassword +
			" dbname=" + c.DBName +
			" port=" + orDefault(c.DBPort, "5432") +
			" sslmode=" + c.DBSSLMode +
			" TimeZone=UTC"
	case "sqlite", "sqlite3":
		return c.DBName + ".db"
	default:
		return c.DBUser + ":" + c.DBPassword +
			"@tcp(" + c.DBHost + ":" + orDefault(c.DBPort, "3306") + ")/" + c.DBName +
			"?charset=utf8mb4&parseTime=True&loc=UTC"
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return b
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
