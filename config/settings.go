package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	defaultListen = ":8080"
	defaultRoot   = "."
)

// Settings captures runtime options for the command-line tool.
type Settings struct {
	// ConfigPath is the theme configuration file; empty means the built-in palette.
	ConfigPath string
	Listen     string
	Root       string
	NoColor    bool
}

// LoadSettings reads runtime settings from GRAPHITE_THEME_* environment variables.
func LoadSettings() (Settings, error) {
	configPath, err := readOptional("GRAPHITE_THEME_CONFIG")
	if err != nil {
		return Settings{}, err
	}
	if configPath != "" {
		configPath = filepath.Clean(configPath)
	}

	listen, err := readRequiredOrDefault("GRAPHITE_THEME_LISTEN", defaultListen)
	if err != nil {
		return Settings{}, err
	}

	root, err := readRequiredOrDefault("GRAPHITE_THEME_ROOT", defaultRoot)
	if err != nil {
		return Settings{}, err
	}

	noColor, err := readBool("GRAPHITE_THEME_NO_COLOR", false)
	if err != nil {
		return Settings{}, err
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		noColor = true
	}

	return Settings{
		ConfigPath: configPath,
		Listen:     listen,
		Root:       filepath.Clean(root),
		NoColor:    noColor,
	}, nil
}

func readOptional(key string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return "", nil
	}
	if raw == "" {
		return "", fmt.Errorf("%s must not be empty when set", key)
	}
	return raw, nil
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if raw == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}

	return raw, nil
}

func readBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}
