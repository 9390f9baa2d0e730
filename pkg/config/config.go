package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/khalid-nowaf/lextree/pkg/wordlist"
)

// Config holds all configuration for the application
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Output     OutputConfig     `mapstructure:"output"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig tells where the word list is and how to read it
type DictionaryConfig struct {
	Path        string `mapstructure:"path"`
	Format      string `mapstructure:"format"` // text or bolt
	Bucket      string `mapstructure:"bucket"` // bolt bucket holding the words
	Encoding    string `mapstructure:"encoding"`
	Lowercase   bool   `mapstructure:"lowercase"`
	FoldAccents bool   `mapstructure:"fold_accents"`
}

// OutputConfig holds query output configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, json, csv or tsv
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig loads configuration from file and LEXTREE_* environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("lextree")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.format", wordlist.FormatText)
	v.SetDefault("dictionary.bucket", "words")
	v.SetDefault("dictionary.encoding", wordlist.EncodingUTF8)
	v.SetDefault("dictionary.lowercase", false)
	v.SetDefault("dictionary.fold_accents", false)

	v.SetDefault("output.format", "text")

	v.SetDefault("server.addr", "localhost:8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate validates the configuration, names are matched case insensitively
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary path is required")
	}

	switch strings.ToLower(c.Dictionary.Format) {
	case wordlist.FormatText:
	case wordlist.FormatBolt:
		if c.Dictionary.Bucket == "" {
			return fmt.Errorf("dictionary bucket is required for the bolt format")
		}
	default:
		return fmt.Errorf("invalid dictionary format: %s", c.Dictionary.Format)
	}

	switch strings.ToLower(c.Dictionary.Encoding) {
	case wordlist.EncodingUTF8, "utf8", wordlist.EncodingLatin1, "latin1", "latin-1":
	default:
		return fmt.Errorf("invalid dictionary encoding: %s", c.Dictionary.Encoding)
	}

	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "csv", "tsv":
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}

// Source returns the word list described by the dictionary configuration
func (c *DictionaryConfig) Source() (wordlist.Source, error) {
	return wordlist.Open(c.Format, c.Path, c.Bucket, wordlist.Options{
		Encoding:    c.Encoding,
		Lowercase:   c.Lowercase,
		FoldAccents: c.FoldAccents,
	})
}
