package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App   App   `yaml:"app"`
	HTTP  HTTP  `yaml:"http"`
	Rate  Rate  `yaml:"rate"`
	Bot   Bot   `yaml:"bot"`
	Watch Watch `yaml:"watch"`
}

type App struct {
	Name           string `env:"APP_NAME" envDefault:"dnf-rate" yaml:"name" validate:"required"`
	Version        string `env:"APP_VERSION" envDefault:"dev" yaml:"version"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFieldMaxLen int    `env:"LOG_FIELD_MAX_LEN" envDefault:"2048" yaml:"log_field_max_len" validate:"min=0"`
	// Уровень записей об обмене с yxdr.com.
	UpstreamLogLevel string `env:"LOG_UPSTREAM_LEVEL" envDefault:"debug" yaml:"upstream_log_level" validate:"oneof=debug info warn error"` //nolint:lll
	ConfigFile       string `env:"CONFIG_FILE" yaml:"-"`
}

// Load читает .env, переменные окружения и, если задан CONFIG_FILE,
// YAML-файл поверх них. Ключи, присутствующие в файле, побеждают.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if config.App.ConfigFile != "" {
		if err := overlay(&config, config.App.ConfigFile); err != nil {
			return Config{}, err
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func overlay(config *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}

	if err := yaml.Unmarshal(raw, config); err != nil {
		return fmt.Errorf("yaml.Unmarshal %s: %w", path, err)
	}

	return nil
}

func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("config: %s failed on %q: %w", verrs[0].Namespace(), verrs[0].Tag(), err)
		}

		return fmt.Errorf("config: %w", err)
	}

	return nil
}
