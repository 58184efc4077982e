package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// FEOBLOG_SERVER_URL or FEOBLOG_LOGGING_LEVEL.
const EnvPrefix = "FEOBLOG"

// LoaderOptions control where Load looks for files.
type LoaderOptions struct {
	// ConfigFile is an explicit config file path. When empty, Load searches
	// for config.yml in the working directory and ./config.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is loaded
	// if it exists.
	EnvFile string
}

// Load reads settings from the config file, .env file, and environment,
// applies defaults, and validates the result. Environment variables win
// over file values.
func Load(opts LoaderOptions) (*Settings, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register every key so environment overrides apply even without a
	// config file.
	v.SetDefault("server_url", "")
	v.SetDefault("prefetch_count", 0)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.output", "")
	v.SetDefault("logging.no_color", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		explicit := opts.ConfigFile != ""
		if explicit || !errors.As(err, &notFound) {
			if explicit {
				return nil, fmt.Errorf("reading config file %s: %w", opts.ConfigFile, err)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file anywhere: defaults plus environment.
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("loading .env: %w", err)
		}
	}
	return nil
}
