package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://localhost/traites
company:
  name: Société Exemple
  tax_id: 123/A
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/traites", cfg.Database.DSN)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "Tunis", cfg.Company.IssuePlace)
	assert.Equal(t, "Société Exemple", cfg.Company.Party().Name)
	assert.False(t, cfg.Company.Party().IsZero())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\nauth:\n  jwt_secret: from-file\n")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, int64(-100123), cfg.Telegram.ChatID)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	require.NoError(t, os.WriteFile(".env", []byte("SMTP_PASSWORD=s3cret\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SMTP_PASSWORD") })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Email.SMTPPassword)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeConfig(t, "server: [")
	_, err = LoadConfig(path)
	assert.Error(t, err)

	path = writeConfig(t, "server:\n  port: 1\n")
	t.Setenv("SERVER_PORT", "eighty")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
