package config

import (
	"errors"
	"os"
	"strconv"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration for caller-identity tokens
type AuthConfig struct {
	JWTSecret string
}

// Mailer configuration selecting the outbound transport
type MailerConfig struct {
	Driver string // smtp, ses, log
	SES    SESConfig
}

// SES configuration for the AWS mail transport
type SESConfig struct {
	Region          string
	AuthType        string // static_credentials or iam_role
	AccessKeyID     string
	SecretAccessKey string
}

// Storage configuration for the blob store
type StorageConfig struct {
	Root string
}

// Bootstrap admin seeded on first start when no admin account exists
type BootstrapConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Auth      AuthConfig
	Mailer    MailerConfig
	Storage   StorageConfig
	Bootstrap BootstrapConfig
}

// Default configuration values
const (
	DefaultServerPort  = "8480"
	DefaultServerHost  = ""
	DefaultMongoURI    = "mongodb://localhost:27017/hiredesk"
	DefaultMongoDB     = "hiredesk"
	DefaultMailDriver  = "smtp"
	DefaultSESRegion   = "us-east-1"
	DefaultSESAuthType = "iam_role"
	DefaultStorageRoot = "/var/lib/hiredesk/uploads"
	DefaultSMTPPort    = 587
)

// New returns a new Config with values from the environment
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Mailer: MailerConfig{
			Driver: getEnv("MAILER_DRIVER", DefaultMailDriver),
			SES: SESConfig{
				Region:          getEnv("SES_REGION", DefaultSESRegion),
				AuthType:        getEnv("SES_AUTH_TYPE", DefaultSESAuthType),
				AccessKeyID:     getEnv("SES_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("SES_SECRET_ACCESS_KEY", ""),
			},
		},
		Storage: StorageConfig{
			Root: getEnv("STORAGE_ROOT", DefaultStorageRoot),
		},
		Bootstrap: BootstrapConfig{
			AdminEmail:    getEnv("BOOTSTRAP_ADMIN_EMAIL", ""),
			AdminPassword: getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
			AdminName:     getEnv("BOOTSTRAP_ADMIN_NAME", "System Admin"),
		},
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// SMTPConfig is the mail-transport configuration. It is resolved from the
// environment at call time, not at startup, so deployments can rotate
// credentials without a restart.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

var (
	ErrSMTPConfigMissing  = errors.New("SMTP configuration is missing. Please set environment variables: SMTP_HOST, SMTP_USER, SMTP_PASSWORD")
	ErrEmailConfigMissing = errors.New("Email configuration is missing. Please set environment variables: EMAIL_FROM, EMAIL_FROMNAME")
)

// SMTPFromEnv reads and validates the mail configuration. It fails before any
// network call is attempted when required values are unset.
func SMTPFromEnv() (*SMTPConfig, error) {
	cfg := &SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     getEnvInt("SMTP_PORT", DefaultSMTPPort),
		User:     getEnv("SMTP_USER", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("EMAIL_FROM", ""),
		FromName: getEnv("EMAIL_FROMNAME", ""),
	}
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		return nil, ErrSMTPConfigMissing
	}
	if cfg.From == "" || cfg.FromName == "" {
		return nil, ErrEmailConfigMissing
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
