package config_test

import (
	"os"
	"testing"

	"hiredesk/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SERVER_HOST", "MONGO_URI", "MONGO_DB",
		"JWT_SECRET", "MAILER_DRIVER", "STORAGE_ROOT",
	} {
		// Setenv registers the restore, Unsetenv makes the default kick in.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.New()

	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, config.DefaultMongoURI, cfg.Mongo.URI)
	assert.Equal(t, config.DefaultMailDriver, cfg.Mailer.Driver)
	assert.Equal(t, config.DefaultStorageRoot, cfg.Storage.Root)
	assert.Equal(t, "", cfg.Auth.JWTSecret)
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("MONGO_URI", "mongodb://db:27017/ats")
	t.Setenv("MONGO_DB", "ats")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MAILER_DRIVER", "log")
	t.Setenv("STORAGE_ROOT", "/tmp/blobs")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "root@example.com")

	cfg := config.New()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address())
	assert.Equal(t, "mongodb://db:27017/ats", cfg.Mongo.URI)
	assert.Equal(t, "ats", cfg.Mongo.Database)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "log", cfg.Mailer.Driver)
	assert.Equal(t, "/tmp/blobs", cfg.Storage.Root)
	assert.Equal(t, "root@example.com", cfg.Bootstrap.AdminEmail)
}

func setSMTPEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_PASSWORD", "hunter2")
	t.Setenv("EMAIL_FROM", "noreply@example.com")
	t.Setenv("EMAIL_FROMNAME", "HireDesk Team")
}

func TestSMTPFromEnv(t *testing.T) {
	setSMTPEnv(t)

	cfg, err := config.SMTPFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com", cfg.Host)
	assert.Equal(t, 465, cfg.Port)
	assert.Equal(t, "mailer", cfg.User)
	assert.Equal(t, "hunter2", cfg.Password)
	assert.Equal(t, "noreply@example.com", cfg.From)
	assert.Equal(t, "HireDesk Team", cfg.FromName)
}

func TestSMTPFromEnvDefaultPort(t *testing.T) {
	setSMTPEnv(t)
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg, err := config.SMTPFromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSMTPPort, cfg.Port)
}

func TestSMTPFromEnvMissingTransport(t *testing.T) {
	setSMTPEnv(t)
	t.Setenv("SMTP_HOST", "")

	_, err := config.SMTPFromEnv()
	assert.ErrorIs(t, err, config.ErrSMTPConfigMissing)
}

func TestSMTPFromEnvMissingSender(t *testing.T) {
	setSMTPEnv(t)
	t.Setenv("EMAIL_FROMNAME", "")

	_, err := config.SMTPFromEnv()
	assert.ErrorIs(t, err, config.ErrEmailConfigMissing)
}
