package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	DBType         string // postgres or sqlite
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string // sqlite file, ":memory:" allowed
	DBMaxOpenConns int
	DBLogLevel     string
	MigrateMode    string // auto, sql or none

	JWTSecret string
	JWTExpiry time.Duration

	RedisURL string
	CacheTTL time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("⚠️  No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		DBType:         getEnv("DB_TYPE", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "taskboard"),
		DBPassword:     getEnv("DB_PASSWORD", "taskboard"),
		DBName:         getEnv("DB_NAME", "taskboard"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBPath:         getEnv("DB_PATH", "taskboard.db"),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		DBLogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
		MigrateMode:    getEnv("MIGRATE_MODE", "auto"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiry:      getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		RedisURL:       getEnv("REDIS_URL", ""),
		CacheTTL:       getEnvAsDuration("CACHE_TTL", 30*time.Second),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBType {
	case "postgres", "postgresql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_TYPE: %s", c.DBType)
	}
	switch c.MigrateMode {
	case "auto", "sql", "none":
	default:
		return fmt.Errorf("unsupported MIGRATE_MODE: %s", c.MigrateMode)
	}
	if c.MigrateMode == "sql" && c.DBType == "sqlite" {
		return fmt.Errorf("MIGRATE_MODE=sql requires a postgres database")
	}
	if c.JWTSecret == "" {
		if c.GinMode == "release" {
			return fmt.Errorf("JWT_SECRET is required in release mode")
		}
		c.JWTSecret = "dev-secret-change-me"
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive")
	}
	return nil
}

// PostgresDSN builds the key/value DSN understood by pgx.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, quoteDSN(c.DBUser), quoteDSN(c.DBPassword), quoteDSN(c.DBName), c.DBSSLMode,
	)
}

// quoteDSN single-quotes a key/value DSN value so spaces and quotes survive.
func quoteDSN(v string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

// PostgresURL is the URL form used by golang-migrate's pgx driver. Credentials
// and database name are escaped.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return value
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return value
}
