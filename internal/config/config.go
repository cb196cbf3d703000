package config

import (
	"fmt"

	"github.com/gorhill/cronexpr"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config represents application configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Daemon DaemonConfig `mapstructure:"daemon"`
}

// OutputConfig controls where calendar files are written
type OutputConfig struct {
	Directory string `mapstructure:"directory"`
}

// DaemonConfig represents daemon mode configuration
type DaemonConfig struct {
	Schedule   string `mapstructure:"schedule"` // Cron expression for regenerating the calendar
	LogFile    string `mapstructure:"log_file"`
	LogLevel   string `mapstructure:"log_level"`
	SystemTray bool   `mapstructure:"system_tray"` // Show system tray icon (Windows only)
}

// Load loads configuration from file. When configPath is empty the
// usual search paths are tried and a missing file falls back to the
// defaults; an explicitly named file must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.textcal")
		v.AddConfigPath("/etc/textcal")
	}

	v.SetDefault("output.directory", ".")
	v.SetDefault("daemon.schedule", "0 6 * * *")
	v.SetDefault("daemon.log_level", "info")

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.Directory == "" {
		return fmt.Errorf("output.directory must not be empty")
	}

	if _, err := cronexpr.Parse(c.Daemon.Schedule); err != nil {
		return fmt.Errorf("daemon.schedule is not a valid cron expression: %w", err)
	}

	if c.Daemon.LogLevel != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(c.Daemon.LogLevel)); err != nil {
			return fmt.Errorf("daemon.log_level %q is not a valid log level", c.Daemon.LogLevel)
		}
	}

	return nil
}
