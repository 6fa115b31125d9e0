package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// A .env file in the working directory, when present, is loaded into the
// environment first without overriding variables that are already set.
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}

// LocalSettings is the subset of Config used by the local CLI.
type LocalSettings struct {
	Log    LogConfig    `yaml:"log"`
	Upload UploadConfig `yaml:"upload"`
	Local  LocalConfig  `yaml:"local"`
}

// LoadLocal reads the same sources as Load but validates only what the
// local CLI needs. Database and auth settings may be absent.
func LoadLocal() (*LocalSettings, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	var cfg LocalSettings
	path, explicit := configPath()
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.Local.Path == "" {
		return nil, errors.New("config: local.path is required")
	}
	if err := cfg.Upload.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: upload: %w", err)
	}
	return &cfg, nil
}

func read() (*Config, error) {
	var cfg Config

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	path, explicit := configPath()
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}

func configPath() (path string, explicit bool) {
	path = os.Getenv("CONFIG_PATH")
	if path != "" {
		return path, true
	}
	return "./config.yaml", false
}

// loadDotEnv loads a dotenv file if it exists. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: load %s: %w", path, err)
}
