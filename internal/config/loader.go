package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > .env > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// loadDotenv exports variables from DOTENV_PATH (fallback "./.env") into the
// process environment. Variables that are already set are left untouched.
func loadDotenv() error {
	path := os.Getenv("DOTENV_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = ".env"
	}

	if _, err := os.Stat(path); err != nil {
		if explicitPath {
			return fmt.Errorf("config: dotenv %s: %w", path, err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: dotenv %s: %w", path, err)
	}
	return nil
}
