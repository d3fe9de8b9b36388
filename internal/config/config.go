package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds process configuration read from SAHARA_* environment
// variables.
type Config struct {
	DB          string `envconfig:"DB"`
	CatalogFile string `envconfig:"CATALOG" validate:"omitempty,file"`
	Variant     string `envconfig:"VARIANT" default:"detailed" validate:"oneof=detailed compact"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
}

var validate = validator.New()

// Load reads configuration from the environment, applies defaults and
// validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("sahara", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	cfg.Variant = strings.ToLower(strings.TrimSpace(cfg.Variant))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if cfg.DB == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DB = filepath.Join(home, ".sahara", "sahara.db")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values against their allowed sets.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: SAHARA_%s %q fails %q", envName(fe.StructField()), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func envName(field string) string {
	switch field {
	case "CatalogFile":
		return "CATALOG"
	case "LogLevel":
		return "LOG_LEVEL"
	case "LogFormat":
		return "LOG_FORMAT"
	}
	return strings.ToUpper(field)
}
