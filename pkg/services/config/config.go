package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/retention-atlas/pkg/services/baseline"
	"github.com/spf13/viper"
)

const EnvPrefix = "RETENTION"

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type BaselineConfig struct {
	Source  string `mapstructure:"source"`
	Path    string `mapstructure:"path"`
	Profile string `mapstructure:"profile"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Baseline BaselineConfig `mapstructure:"baseline"`
	Log      LogConfig      `mapstructure:"log"`
}

func (c BaselineConfig) Options() baseline.SourceOptions {
	return baseline.SourceOptions{Path: c.Path, Profile: c.Profile}
}

// LoadConfig reads the optional config file at path and overlays the environment:
// RETENTION_SERVER_PORT, RETENTION_BASELINE_SOURCE, ... plus the bare
// SERVER_HOST and SERVER_PORT variables the .env file carries.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.host", EnvPrefix+"_SERVER_HOST", "SERVER_HOST")
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "SERVER_PORT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("baseline.source", baseline.SourceDefault)
	v.SetDefault("baseline.path", "")
	v.SetDefault("baseline.profile", "")
	v.SetDefault("log.level", "info")
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, fmt.Errorf("server.port is required"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must be positive"))
	}
	if c.Baseline.Source != baseline.SourceDefault && c.Baseline.Path == "" {
		errs = append(errs, fmt.Errorf("baseline.path is required for the %s source", c.Baseline.Source))
	}
	return errors.Join(errs...)
}
