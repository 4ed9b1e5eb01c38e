package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timeouts, directories)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Admin   AdminConfig
	SMTP    SMTPConfig
	Upload  UploadConfig
	Content ContentConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"`
}

type SessionConfig struct {
	Secret   string        `envconfig:"SESSION_SECRET" required:"true"`
	Duration time.Duration `envconfig:"SESSION_DURATION" default:"24h"`
	Domain   string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
}

type AdminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL" required:"true"`
	Password string `envconfig:"ADMIN_PASSWORD" required:"true"`
}

type SMTPConfig struct {
	Host     string `envconfig:"EMAIL_SERVER_HOST" default:""`
	Port     int    `envconfig:"EMAIL_SERVER_PORT" default:"587"`
	User     string `envconfig:"EMAIL_SERVER_USER" default:""`
	Password string `envconfig:"EMAIL_SERVER_PASSWORD" default:""`
	From     string `envconfig:"EMAIL_FROM" default:"contact@kairo-digital.fr"`
}

type UploadConfig struct {
	Dir          string `envconfig:"UPLOAD_DIR" default:"public/uploads"`
	PublicPrefix string `envconfig:"UPLOAD_PUBLIC_PREFIX" default:"/uploads"`
	MaxSizeBytes int64  `envconfig:"UPLOAD_MAX_SIZE_BYTES" default:"5242880"`
}

type ContentConfig struct {
	Dir string `envconfig:"CONTENT_DIR" default:"data/content"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Paris",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Session: SessionConfig{
			Secret:   "test-session-secret",
			Duration: 24 * time.Hour,
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			Email:    "admin@kairo-digital.fr",
			Password: "admin123",
		},
		SMTP: SMTPConfig{
			From: "contact@kairo-digital.fr",
		},
		Upload: UploadConfig{
			Dir:          "public/uploads",
			PublicPrefix: "/uploads",
			MaxSizeBytes: 5 << 20,
		},
		Content: ContentConfig{
			Dir: "data/content",
		},
	}
}
