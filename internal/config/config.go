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
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	CORS     CORSConfig
	Register RegisterConfig
	Nonce    NonceConfig
	Email    EmailConfig
	Admin    AdminConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// AdminConfig holds the single admin login.
type AdminConfig struct {
	Email        string `mapstructure:"email"`
	PasswordHash string `mapstructure:"password_hash"`
}

// RegisterConfig holds report computation settings.
type RegisterConfig struct {
	WithholdingFeeLabel string        `mapstructure:"withholding_fee_label"`
	StampDutyFeeLabel   string        `mapstructure:"stamp_duty_fee_label"`
	MonthCacheTTL       time.Duration `mapstructure:"month_cache_ttl"`
	ArchiveEnabled      bool          `mapstructure:"archive_enabled"`
}

// NonceConfig holds settings for the time-windowed action tokens.
type NonceConfig struct {
	Secret   string        `mapstructure:"secret"`
	SiteHost string        `mapstructure:"site_host"`
	Lifetime time.Duration `mapstructure:"lifetime"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds MySQL connection settings for the store database.
type DBConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	Name        string `mapstructure:"name"`
	TablePrefix string `mapstructure:"table_prefix"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxIdle     int    `mapstructure:"max_idle"`
}

// DSN returns the MySQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for report archival.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
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

// Load reads configuration from environment variables with the CORRISPETTIVI_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CORRISPETTIVI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "wordpress")
	v.SetDefault("db.password", "wordpress")
	v.SetDefault("db.name", "wordpress")
	v.SetDefault("db.table_prefix", "wp_")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.issuer", "corrispettivi")

	// S3 defaults
	v.SetDefault("s3.region", "eu-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Register defaults
	v.SetDefault("register.withholding_fee_label", "Withholding tax")
	v.SetDefault("register.stamp_duty_fee_label", "Imposta di bollo")
	v.SetDefault("register.month_cache_ttl", "5m")
	v.SetDefault("register.archive_enabled", false)

	// Nonce defaults
	v.SetDefault("nonce.secret", "")
	v.SetDefault("nonce.site_host", "localhost")
	v.SetDefault("nonce.lifetime", "24h")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "eu-south-1")
	v.SetDefault("email.from_address", "noreply@example.com")
	v.SetDefault("email.from_name", "Registro Corrispettivi")

	// Admin defaults
	v.SetDefault("admin.email", "admin@example.com")
	v.SetDefault("admin.password_hash", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "CORRISPETTIVI_SERVER_PORT",
		"server.read_timeout":  "CORRISPETTIVI_SERVER_READ_TIMEOUT",
		"server.write_timeout": "CORRISPETTIVI_SERVER_WRITE_TIMEOUT",
		"server.environment":   "CORRISPETTIVI_SERVER_ENVIRONMENT",
		"db.host":              "CORRISPETTIVI_DB_HOST",
		"db.port":              "CORRISPETTIVI_DB_PORT",
		"db.user":              "CORRISPETTIVI_DB_USER",
		"db.password":          "CORRISPETTIVI_DB_PASSWORD",
		"db.name":              "CORRISPETTIVI_DB_NAME",
		"db.table_prefix":      "CORRISPETTIVI_DB_TABLE_PREFIX",
		"db.max_open":          "CORRISPETTIVI_DB_MAX_OPEN",
		"db.max_idle":          "CORRISPETTIVI_DB_MAX_IDLE",
		"jwt.secret":           "CORRISPETTIVI_JWT_SECRET",
		"jwt.access_expiry":    "CORRISPETTIVI_JWT_ACCESS_EXPIRY",
		"jwt.issuer":           "CORRISPETTIVI_JWT_ISSUER",
		"s3.region":            "CORRISPETTIVI_S3_REGION",
		"s3.bucket":            "CORRISPETTIVI_S3_BUCKET",
		"s3.endpoint":          "CORRISPETTIVI_S3_ENDPOINT",
		"s3.access_key":        "CORRISPETTIVI_S3_ACCESS_KEY",
		"s3.secret_key":        "CORRISPETTIVI_S3_SECRET_KEY",
		"s3.presign_expiry":    "CORRISPETTIVI_S3_PRESIGN_EXPIRY",
		"log.level":            "CORRISPETTIVI_LOG_LEVEL",
		"log.format":           "CORRISPETTIVI_LOG_FORMAT",
		"cors.allowed_origins":            "CORRISPETTIVI_CORS_ALLOWED_ORIGINS",
		"register.withholding_fee_label":  "CORRISPETTIVI_REGISTER_WITHHOLDING_FEE_LABEL",
		"register.stamp_duty_fee_label":   "CORRISPETTIVI_REGISTER_STAMP_DUTY_FEE_LABEL",
		"register.month_cache_ttl":        "CORRISPETTIVI_REGISTER_MONTH_CACHE_TTL",
		"register.archive_enabled":        "CORRISPETTIVI_REGISTER_ARCHIVE_ENABLED",
		"nonce.secret":                    "CORRISPETTIVI_NONCE_SECRET",
		"nonce.site_host":                 "CORRISPETTIVI_NONCE_SITE_HOST",
		"nonce.lifetime":                  "CORRISPETTIVI_NONCE_LIFETIME",
		"email.provider":                  "CORRISPETTIVI_EMAIL_PROVIDER",
		"email.region":                    "CORRISPETTIVI_EMAIL_REGION",
		"email.from_address":              "CORRISPETTIVI_EMAIL_FROM_ADDRESS",
		"email.from_name":                 "CORRISPETTIVI_EMAIL_FROM_NAME",
		"admin.email":                     "CORRISPETTIVI_ADMIN_EMAIL",
		"admin.password_hash":             "CORRISPETTIVI_ADMIN_PASSWORD_HASH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CORRISPETTIVI_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CORRISPETTIVI_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:        v.GetString("db.host"),
		Port:        v.GetInt("db.port"),
		User:        v.GetString("db.user"),
		Password:    v.GetString("db.password"),
		Name:        v.GetString("db.name"),
		TablePrefix: v.GetString("db.table_prefix"),
		MaxOpen:     v.GetInt("db.max_open"),
		MaxIdle:     v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
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

	cfg.Register = RegisterConfig{
		WithholdingFeeLabel: v.GetString("register.withholding_fee_label"),
		StampDutyFeeLabel:   v.GetString("register.stamp_duty_fee_label"),
		MonthCacheTTL:       v.GetDuration("register.month_cache_ttl"),
		ArchiveEnabled:      v.GetBool("register.archive_enabled"),
	}

	cfg.Nonce = NonceConfig{
		Secret:   v.GetString("nonce.secret"),
		SiteHost: v.GetString("nonce.site_host"),
		Lifetime: v.GetDuration("nonce.lifetime"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	cfg.Admin = AdminConfig{
		Email:        v.GetString("admin.email"),
		PasswordHash: v.GetString("admin.password_hash"),
	}

	return cfg, nil
}
