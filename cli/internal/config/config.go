package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem all commands operate on. Tests swap it for a
// memory-backed filesystem.
var AppFs = afero.NewOsFs()

// Config holds the application configuration.
type Config struct {
	SourcePath string
	OutputPath string
	Debug      bool
}

// LoadConfig reads configuration from a .dragonfly config file, the
// environment (DRAGONFLY_ prefix), and .env / .env.local files.
func LoadConfig() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".dragonfly")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "dragonfly"))

	viper.SetEnvPrefix("DRAGONFLY")
	viper.AutomaticEnv()

	viper.SetDefault("source_path", "app.dfly")
	viper.SetDefault("output_path", "./out")
	viper.SetDefault("debug", false)

	// A missing config file is not an error.
	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// .env.local overrides .env
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		SourcePath: viper.GetString("source_path"),
		OutputPath: viper.GetString("output_path"),
		Debug:      viper.GetBool("debug"),
	}

	return cfg, nil
}

// SaveConfig writes the configuration to $HOME/.config/dragonfly.
func SaveConfig(cfg *Config) error {
	viper.Set("source_path", cfg.SourcePath)
	viper.Set("output_path", cfg.OutputPath)
	viper.Set("debug", cfg.Debug)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "dragonfly")
	if err := AppFs.MkdirAll(configPath, 0o755); err != nil {
		return err
	}

	return viper.WriteConfigAs(filepath.Join(configPath, ".dragonfly.yaml"))
}
