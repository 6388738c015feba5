package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	AuthBasePath string `env:"AUTH_BASE_PATH, default=/auth"`
	APIBasePath  string `env:"API_BASE_PATH,  default=/api"`

	// SuperAdminPrivileged puts SUPERADMIN on every admin and job-mutator
	// allow-list. It never makes SUPERADMIN assignable through the API.
	SuperAdminPrivileged bool `env:"SUPERADMIN_PRIVILEGED, default=true"`

	CORSOrigins    []string `env:"CORS_ORIGINS"`
	MetricsEnabled bool     `env:"METRICS_ENABLED,  default=true"`
	DocsEnabled    bool     `env:"API_DOCS_ENABLED, default=true"`

	JWT    JWTConfig
	Log    LogFileConfig
	DB     DBConfig
	Redis  RedisConfig
	Mongo  MongoConfig
	SMTP   SMTPConfig
	Mail   MailConfig
	Upload UploadConfig
	Seed   SeedConfig
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN, default=1h"`
}

type LogFileConfig struct {
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB,  default=50"`
	MaxBackups int    `env:"LOG_FILE_MAX_BACKUPS,  default=5"`
	MaxAgeDays int    `env:"LOG_FILE_MAX_AGE_DAYS, default=14"`
}

type DBConfig struct {
	Driver      string `env:"DB_DRIVER, default=postgres"`
	DSN         string `env:"DB_DSN"`
	Host        string `env:"PG_HOST,     default=localhost"`
	Port        int    `env:"PG_PORT,     default=5432"`
	User        string `env:"PG_USER,     default=postgres"`
	Password    string `env:"PG_PASSWORD"`
	Database    string `env:"PG_DATABASE, default=netbeans"`
	SSLMode     string `env:"PG_SSLMODE,  default=disable"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE, default=true"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,         default=0"`
	DedupTTL time.Duration `env:"NOTIFY_DEDUP_TTL, default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=netbeans"`
}

type SMTPConfig struct {
	Host               string `env:"SMTP_HOST,   default=smtp.gmail.com"`
	Port               int    `env:"SMTP_PORT,   default=587"`
	Secure             bool   `env:"SMTP_SECURE, default=false"`
	User               string `env:"SMTP_USER"`
	Pass               string `env:"SMTP_PASS"`
	InsecureSkipVerify bool   `env:"SMTP_INSECURE_SKIP_VERIFY, default=true"`
}

type MailConfig struct {
	From        string        `env:"MAIL_FROM"`
	Admin       string        `env:"MAIL_ADMIN"`
	Workers     int           `env:"MAIL_WORKERS,      default=2"`
	QueueSize   int           `env:"MAIL_QUEUE_SIZE,   default=128"`
	SendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT, default=30s"`
}

type UploadConfig struct {
	Dir      string `env:"UPLOAD_DIR,       default=uploads/resumes"`
	MaxBytes int64  `env:"UPLOAD_MAX_BYTES, default=5242880"`
}

// Seed passwords shipped as defaults; accounts created with them must be
// rotated before the server is exposed.
const (
	DefaultAdminPassword      = "changeme123"
	DefaultSuperAdminPassword = "ChangeMe@123"
)

type SeedConfig struct {
	AdminName          string `env:"INIT_ADMIN_NAME,          default=Initial Admin"`
	AdminEmail         string `env:"INIT_ADMIN_EMAIL,         default=admin@example.com"`
	AdminPassword      string `env:"INIT_ADMIN_PASSWORD,      default=changeme123"`
	SuperAdminName     string `env:"INIT_SUPERADMIN_NAME,     default=Super Admin"`
	SuperAdminEmail    string `env:"INIT_SUPERADMIN_EMAIL,    default=superadmin@example.com"`
	SuperAdminPassword string `env:"INIT_SUPERADMIN_PASSWORD, default=ChangeMe@123"`
}

// AdminRecipient is where form notifications go; it falls back to the SMTP
// account when MAIL_ADMIN is unset.
func (c *Config) AdminRecipient() string {
	if c.Mail.Admin != "" {
		return c.Mail.Admin
	}
	return c.SMTP.User
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ConnString returns the connection string for the configured driver. DB_DSN wins
// when set.
func (d DBConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	switch d.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
			d.User, d.Password, d.Host, d.Port, d.Database)
	case "sqlite":
		return d.Database + ".db"
	default:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode)
	}
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// LoadFrom reads configuration from the given lookuper; used by tests.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
