package config

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Application holds all the application-wide dependencies.
type Application struct {
	Config         Config
	Logger         zerolog.Logger
	DB             *pgxpool.Pool
	Redis          *redis.Client // nil when no Redis is configured
	TracerProvider *trace.TracerProvider
}

// Config holds all the configuration variables for the application.
type Config struct {
	Port                 int      `mapstructure:"PORT"`
	App_Env              string   `mapstructure:"APP_ENV"`
	JWTSecret            string   `mapstructure:"JWT_SECRET"`
	CORS_Allowed_Origins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	DatabaseURL          string   `mapstructure:"DATABASE_URL"`
	DbHost               string   `mapstructure:"DB_HOST"`
	DbPort               int      `mapstructure:"DB_PORT"`
	DbUser               string   `mapstructure:"DB_USER"`
	DbPassword           string   `mapstructure:"DB_PASSWORD"`
	DbName               string   `mapstructure:"DB_NAME"`
	DbSslMode            string   `mapstructure:"DB_SSL_MODE"`
	DbMaxConns           int      `mapstructure:"DB_MAX_CONNS"`
	DbMinConns           int      `mapstructure:"DB_MIN_CONNS"`
	RedisHost            string   `mapstructure:"REDIS_HOST"`
	RedisPort            int      `mapstructure:"REDIS_PORT"`
	RedisPassword        string   `mapstructure:"REDIS_PASSWORD"`
	CacheTTLSeconds      int      `mapstructure:"CACHE_TTL_SECONDS"`
	LogLevel             string   `mapstructure:"LOG_LEVEL"`
	BcryptCost           int      `mapstructure:"BCRYPT_COST"`
	OtelEndpoint         string   `mapstructure:"OTEL_EXPORTER_ENDPOINT"`
	SeedReferenceData    bool     `mapstructure:"SEED_REFERENCE_DATA"`
	// Notification Configuration
	SMTPHost          string `mapstructure:"SMTP_HOST"`
	SMTPPort          int    `mapstructure:"SMTP_PORT"`
	SMTPUser          string `mapstructure:"SMTP_USER"`
	SMTPPassword      string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom          string `mapstructure:"SMTP_FROM"`
	MailRatePerMinute int    `mapstructure:"MAIL_RATE_PER_MINUTE"`
}

type ContextKey string

const (
	AccountIDKey = ContextKey("accountID")
	RequestIDKey = ContextKey("request_id")
)

// keys lists every setting bound from the environment. Unmarshal only sees
// keys viper knows about, so each one is bound explicitly.
var keys = []string{
	"PORT", "APP_ENV", "JWT_SECRET", "CORS_ALLOWED_ORIGINS",
	"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
	"DB_MAX_CONNS", "DB_MIN_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "CACHE_TTL_SECONDS",
	"LOG_LEVEL", "BCRYPT_COST", "OTEL_EXPORTER_ENDPOINT", "SEED_REFERENCE_DATA",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "SMTP_FROM", "MAIL_RATE_PER_MINUTE",
}

// Load reads configuration from secrets, environment variables, or defaults.
func Load() (config Config, err error) {
	v := viper.New()

	// 1. Determine Environment First
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	v.Set("APP_ENV", env)

	// 2. Set Defaults based on Environment
	if env == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("BCRYPT_COST", 12)
		v.SetDefault("SEED_REFERENCE_DATA", false)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("BCRYPT_COST", 10)
		v.SetDefault("SEED_REFERENCE_DATA", true)
	}

	// Universal Defaults
	v.SetDefault("PORT", 8080)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 30)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("CACHE_TTL_SECONDS", 300)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_RATE_PER_MINUTE", 30)

	// 3. Conditional Loading Logic
	if env == "development" {
		_ = loadEnvFile(v, ".env")
		_ = loadEnvFile(v, "../.env")
	} else {
		loadSecret(v, "JWT_SECRET", "jwt_secret")
		loadSecret(v, "DATABASE_URL", "database_url")
		loadSecret(v, "DB_USER", "db_user")
		loadSecret(v, "DB_PASSWORD", "db_password")
		loadSecret(v, "DB_NAME", "db_name")
		loadSecret(v, "REDIS_PASSWORD", "redis_password")
		loadSecret(v, "SMTP_PASSWORD", "smtp_password")
	}

	// 4. System env vars override everything loaded so far
	for _, key := range keys {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	// 5. Unmarshal
	err = v.Unmarshal(&config)
	return
}

// loadSecret reads a file from /run/secrets and sets it in Viper
func loadSecret(v *viper.Viper, key, name string) {
	candidates := []string{name, strings.ToUpper(name), strings.ToLower(name)}
	for _, filename := range candidates {
		path := fmt.Sprintf("/run/secrets/%s", filename)
		if _, err := os.Stat(path); err == nil {
			content, _ := os.ReadFile(path)
			if len(content) > 0 {
				v.Set(key, strings.TrimSpace(string(content)))
				return
			}
		}
	}
}

// loadEnvFile parses a .env file and sets values into Viper AND os.Env
func loadEnvFile(v *viper.Viper, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove surrounding quotes
		if len(value) > 1 && (value[0] == '"' || value[0] == '\'') && value[0] == value[len(value)-1] {
			value = value[1 : len(value)-1]
		}

		// System env keeps precedence
		if os.Getenv(key) == "" {
			v.Set(key, value)
			os.Setenv(key, value)
		}
	}

	return scanner.Err()
}

// Validate performs comprehensive configuration validation
func (c *Config) Validate() error {
	var errors []string

	if c.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is required")
	} else if len(c.JWTSecret) < 32 {
		errors = append(errors, "JWT_SECRET must be at least 32 characters long")
	}

	if c.DatabaseURL == "" {
		if c.DbUser == "" {
			errors = append(errors, "DB_USER is required when DATABASE_URL is not set")
		}
		if c.DbName == "" {
			errors = append(errors, "DB_NAME is required when DATABASE_URL is not set")
		}
	}

	if c.BcryptCost < 10 {
		errors = append(errors, "BCRYPT_COST must be at least 10")
	}

	if c.CacheTTLSeconds <= 0 {
		errors = append(errors, "CACHE_TTL_SECONDS must be positive")
	}

	if c.SMTPHost != "" && c.SMTPFrom == "" {
		errors = append(errors, "SMTP_FROM is required when SMTP_HOST is set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// DSN returns DATABASE_URL, or a URL built from the individual DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DbUser, c.DbPassword),
		Host:     fmt.Sprintf("%s:%d", c.DbHost, c.DbPort),
		Path:     "/" + c.DbName,
		RawQuery: url.Values{"sslmode": {c.DbSslMode}}.Encode(),
	}
	return dsn.String()
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App_Env == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App_Env == "production"
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// GetCacheTTL returns how long cached reference data lives
func (c *Config) GetCacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
