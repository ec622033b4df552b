package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:  "file",
			FilePath: "data/volunteerhub.json",
		},
		Admin: AdminConfig{
			Username:     "admin",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := Validate(validConfig())
	assert.NoError(t, err)
}

func TestValidate_MemoryBackendNeedsNothingElse(t *testing.T) {
	cfg := validConfig()
	cfg.Storage = StorageConfig{Backend: "memory"}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Backend = "sqlite"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_FileBackendRequiresPath(t *testing.T) {
	cfg := validConfig()
	cfg.Storage = StorageConfig{Backend: "file"}

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestValidate_PostgresBackendRequiresURL(t *testing.T) {
	cfg := validConfig()
	cfg.Storage = StorageConfig{Backend: "postgres"}

	err := Validate(cfg)
	assert.Error(t, err)

	cfg.Storage.PostgresURL = "postgres://localhost:5432/volunteerhub"
	err = Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_RedisBackendRequiresAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Storage = StorageConfig{Backend: "redis"}

	err := Validate(cfg)
	assert.Error(t, err)

	cfg.Storage.RedisAddr = "localhost:6379"
	err = Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingAdminCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Admin.PasswordHash = ""

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "volunteerhub.yaml")

	content := `storage:
  backend: file
  filePath: data/volunteerhub.json
admin:
  username: admin
  passwordHash: "$2a$10$abcdefghijklmnopqrstuv"
logFile: logs/app.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "data/volunteerhub.json", cfg.Storage.FilePath)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "logs/app.log", cfg.LogFile)
}

func TestLoadFromPath_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "volunteerhub.yaml")

	content := `storage:
  backend: postgres
  postgresURL: postgres://yaml-host:5432/volunteerhub
admin:
  username: admin
  passwordHash: "$2a$10$abcdefghijklmnopqrstuv"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("VOLUNTEERHUB_POSTGRES_URL", "postgres://env-host:5432/volunteerhub")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env-host:5432/volunteerhub", cfg.Storage.PostgresURL)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "volunteerhub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [not: a mapping"), 0644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
