package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend     string `yaml:"backend" validate:"required,oneof=memory file postgres redis"`
	FilePath    string `yaml:"filePath,omitempty" validate:"required_if=Backend file"`
	PostgresURL string `yaml:"postgresURL,omitempty" validate:"required_if=Backend postgres"`
	RedisAddr   string `yaml:"redisAddr,omitempty" validate:"required_if=Backend redis"`
	RedisPrefix string `yaml:"redisPrefix,omitempty"`
}

// AdminConfig holds the coordinator account credentials. PasswordHash is a
// bcrypt hash, see the hashPassword command.
type AdminConfig struct {
	Username     string `yaml:"username" validate:"required"`
	PasswordHash string `yaml:"passwordHash" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	Storage StorageConfig `yaml:"storage" validate:"required"`
	Admin   AdminConfig   `yaml:"admin" validate:"required"`
	LogFile string        `yaml:"logFile,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from volunteerhub.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// applyEnvOverrides layers connection settings from the environment over the
// config file so secrets can stay out of yaml. A .env file in the working
// directory is loaded first if present.
func applyEnvOverrides(cfg *Config) {
	// Ignore the error: a missing .env file just means plain environment
	_ = godotenv.Load()

	if v := os.Getenv("VOLUNTEERHUB_POSTGRES_URL"); v != "" {
		cfg.Storage.PostgresURL = v
	}
	if v := os.Getenv("VOLUNTEERHUB_REDIS_ADDR"); v != "" {
		cfg.Storage.RedisAddr = v
	}
	if v := os.Getenv("VOLUNTEERHUB_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

// findConfigFile searches for volunteerhub.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "volunteerhub.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
