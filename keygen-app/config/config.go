package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "KEYGEN"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"    yaml:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Key    KeyConfig    `mapstructure:"key"    yaml:"key"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  env:"KEYGEN_LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty" env:"KEYGEN_LOG_PRETTY"`
}

// OutputConfig controls how the generated account is printed
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" env:"KEYGEN_OUTPUT_FORMAT"`
}

// KeyConfig holds an optional private key override.
// When empty a fresh key is drawn from the OS random source.
type KeyConfig struct {
	PrivateKey string `mapstructure:"private_key" yaml:"private_key" env:"KEYGEN_KEY_PRIVATE_KEY"` //nolint: lll // w
}

// Load loads configuration from an optional file and the environment.
// An empty configPath skips the file and uses defaults plus environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Key.PrivateKey = strings.TrimSpace(cfg.Key.PrivateKey)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", false)

	v.SetDefault("output.format", FormatText)

	v.SetDefault("key.private_key", "")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml, got %q", c.Output.Format)
	}
	return nil
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Pretty: false,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}
