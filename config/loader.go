package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// ConfigFile is an explicit YAML file path. Empty means search the
	// standard locations and proceed without a file if none exists.
	ConfigFile string
	// EnvFile is an explicit .env file path. Empty means try ./.env.
	EnvFile string
}

// Load reads settings from the environment and optional files, applies
// defaults and validates the result.
func Load(opts LoadOptions) (*Settings, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix("DBKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults double as key registrations so AutomaticEnv feeds Unmarshal.
	v.SetDefault("conversion.policy", "")
	v.SetDefault("conversion.charset", "")
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.output", "")
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.caller", false)

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// MustLoad is Load with defaults only, for embedders that pass no options.
func MustLoad() *Settings {
	settings, err := Load(LoadOptions{})
	if err != nil {
		panic(err)
	}
	return settings
}

func loadEnvFile(path string) {
	if path != "" {
		_ = godotenv.Load(path)
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}

// findConfigFile searches standard locations for a settings file.
func findConfigFile() string {
	searchPaths := []string{
		"./dbkit.yml",
		"./config/dbkit.yml",
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
