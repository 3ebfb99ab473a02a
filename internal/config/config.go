package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "nrhelper"

// Config represents the application configuration
type Config struct {
	DefaultDataset string `toml:"default_dataset"`
	ImageDir       string `toml:"image_dir"`
	Sort           string `toml:"sort"`
	Listen         string `toml:"listen"`
	LogLevel       string `toml:"log_level"`
	LogJSON        bool   `toml:"log_json"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		DefaultDataset: "genesys_merged.json",
		ImageDir:       filepath.Join(GetXDGDataHome(), appName, "images"),
		Sort:           "desc",
		Listen:         "127.0.0.1:8080",
		LogLevel:       "info",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCacheDir returns the nrhelper directory under XDG_CACHE_HOME
func GetCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, appName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(homeDir, ".cache", appName)
}

// GetDatasetLibraryPath returns the path to the dataset library
func GetDatasetLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "datasets")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDatasetPath returns the path to a dataset, either in the dataset library or a relative path
func GetDatasetPath(name string) (string, error) {
	// First, try to find the dataset in the library
	datasetPath := filepath.Join(GetDatasetLibraryPath(), name)
	if _, err := os.Stat(datasetPath); err == nil {
		return datasetPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("dataset not found: %s", name)
}

// GetDefaultDataset returns the default dataset name from config
func GetDefaultDataset() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultDataset, nil
}

// SetDefaultDataset sets the default dataset in the config
func SetDefaultDataset(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultDataset = name

	return writeConfig(config)
}
