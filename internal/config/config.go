package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Report ReportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds verification settings for access tokens issued by the
// identity service.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ReportConfig holds report generation settings.
type ReportConfig struct {
	FYYearsBack    int `mapstructure:"fy_years_back"`
	FYYearsForward int `mapstructure:"fy_years_forward"`
}

// Load reads configuration from environment variables with the TAXTALLY_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAXTALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "taxtally")
	v.SetDefault("db.password", "taxtally_secret")
	v.SetDefault("db.name", "taxtally_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "taxtally")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Report defaults
	v.SetDefault("report.fy_years_back", 4)
	v.SetDefault("report.fy_years_forward", 0)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "TAXTALLY_SERVER_PORT",
		"server.read_timeout":     "TAXTALLY_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "TAXTALLY_SERVER_WRITE_TIMEOUT",
		"server.environment":      "TAXTALLY_SERVER_ENVIRONMENT",
		"db.host":                 "TAXTALLY_DB_HOST",
		"db.port":                 "TAXTALLY_DB_PORT",
		"db.user":                 "TAXTALLY_DB_USER",
		"db.password":             "TAXTALLY_DB_PASSWORD",
		"db.name":                 "TAXTALLY_DB_NAME",
		"db.sslmode":              "TAXTALLY_DB_SSLMODE",
		"db.max_open":             "TAXTALLY_DB_MAX_OPEN",
		"db.max_idle":             "TAXTALLY_DB_MAX_IDLE",
		"jwt.secret":              "TAXTALLY_JWT_SECRET",
		"jwt.issuer":              "TAXTALLY_JWT_ISSUER",
		"log.level":               "TAXTALLY_LOG_LEVEL",
		"log.format":              "TAXTALLY_LOG_FORMAT",
		"cors.allowed_origins":    "TAXTALLY_CORS_ALLOWED_ORIGINS",
		"report.fy_years_back":    "TAXTALLY_REPORT_FY_YEARS_BACK",
		"report.fy_years_forward": "TAXTALLY_REPORT_FY_YEARS_FORWARD",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TAXTALLY_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TAXTALLY_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Report = ReportConfig{
		FYYearsBack:    v.GetInt("report.fy_years_back"),
		FYYearsForward: v.GetInt("report.fy_years_forward"),
	}

	return cfg, nil
}
