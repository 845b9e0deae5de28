package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyAPIURL  = "api_url"
	cfgKeyTimeout = "timeout"

	defaultAPIURL = "http://localhost:8080"
)

// defaultConfigDir is ~/.milestones, or MILESTONES_CONFIG_DIR when set.
func defaultConfigDir() string {
	if dir := os.Getenv("MILESTONES_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".milestones"
	}
	return filepath.Join(home, ".milestones")
}

// loadConfig reads config.yaml from configDir. Precedence is flag > env
// (MILESTONES_API_URL) > config file > default. A missing file is fine.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAPIURL, defaultAPIURL)
	v.SetDefault(cfgKeyTimeout, "30s")
	v.SetEnvPrefix("MILESTONES")
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
