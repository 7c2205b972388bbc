package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadConfigKoanf loads configuration using Koanf with the precedence:
// environment variables > config file > Default(). It reads no CLI flags;
// Config.Merge overlays flag values on the result.
func LoadConfigKoanf(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load YAML config file.
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// 2. Load environment variables (highest non-flag priority).
	// RKRGST_MATCH__DEFAULT_SEARCH_LENGTH -> match.default_search_length
	// RKRGST_OUTPUT__FORMAT -> output.format
	err := k.Load(env.Provider("RKRGST_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "RKRGST_")
		s = strings.Replace(s, "__", ".", -1)
		s = strings.ToLower(s)
		return s
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	out := *Default()
	if err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{
		Tag: "koanf",
	}); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	v := validator.New()
	if err := v.Struct(&out); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &out, nil
}
