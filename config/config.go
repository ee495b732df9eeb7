package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all program configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	Logger LoggerConfig

	// Gemini API access
	Gemini GeminiConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig controls where the API key is read from and which endpoint is called.
// The model and prompt are fixed and deliberately not part of the config.
type GeminiConfig struct {
	APIKeyEnv  string // name of the environment variable holding the key
	APIURL     string // empty means the SDK default endpoint
	APIVersion string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/gemini-hello/
// unless path points at a specific file.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/gemini-hello/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Gemini.APIKeyEnv = strings.TrimSpace(v.GetString("gemini.api_key_env"))
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")
	cfg.Gemini.APIVersion = v.GetString("gemini.api_version")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)

	v.SetDefault("gemini.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("gemini.api_url", "")
	v.SetDefault("gemini.api_version", "")
}

func validate(cfg *Config) error {
	if cfg.Gemini.APIKeyEnv == "" {
		return fmt.Errorf("gemini.api_key_env must name an environment variable")
	}
	switch cfg.Logger.Mode {
	case "development", "production":
	default:
		return fmt.Errorf("logger.mode %q is not one of development, production", cfg.Logger.Mode)
	}
	return nil
}
