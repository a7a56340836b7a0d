// Package config holds the dnsgen configuration surface.
//
// Values are layered with viper: flags override DNSGEN_* environment
// variables, which override an optional dnsgen.yaml, which overrides the
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bryanCE/dnsgen/internal/generator"
	"github.com/bryanCE/dnsgen/internal/output"
	"github.com/bryanCE/dnsgen/pkg/vocabulary"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "DNSGEN"
	DefaultOutput  = "generate.json"
	DefaultTTL     = 3600
	configFileName = "dnsgen"
)

// Config is the resolved configuration for a generate run
type Config struct {
	Count      int    `mapstructure:"count" yaml:"count"`
	Output     string `mapstructure:"output" yaml:"output"`
	Format     string `mapstructure:"format" yaml:"format"`
	Seed       uint64 `mapstructure:"seed" yaml:"seed"`
	TLD        string `mapstructure:"tld" yaml:"tld"`
	MaxRetries int    `mapstructure:"max_retries" yaml:"max_retries"`
	LegacyIPv6 bool   `mapstructure:"legacy_ipv6" yaml:"legacy_ipv6"`
	TTL        uint32 `mapstructure:"ttl" yaml:"ttl"`
	Debug      bool   `mapstructure:"debug" yaml:"debug"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Count:      generator.DefaultCount,
		Output:     DefaultOutput,
		Format:     string(output.FormatJSON),
		TLD:        vocabulary.DefaultTLD,
		MaxRetries: generator.DefaultMaxRetries,
		TTL:        DefaultTTL,
	}
}

// BindFlags registers one flag per configuration key on fs
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.IntP("count", "c", d.Count, "Number of records to generate")
	fs.StringP("output", "o", d.Output, "Output file path ('-' for stdout)")
	fs.StringP("format", "f", d.Format, "Output format (json, yaml, csv, zone, table)")
	fs.Uint64P("seed", "s", d.Seed, "Random seed (0 picks one from the clock)")
	fs.String("tld", d.TLD, "Top-level label appended to every root domain")
	fs.Int("max-retries", d.MaxRetries, "Consecutive name collisions tolerated before giving up")
	fs.Bool("legacy-ipv6", d.LegacyIPv6, "Emit AAAA addresses in the legacy 2001:db8::: shape")
	fs.Uint32("ttl", d.TTL, "TTL used for zone output")
}

// Load resolves the configuration. configFile may be empty, in which case
// ./dnsgen.yaml is used when present.
func Load(fs *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("count", d.Count)
	v.SetDefault("output", d.Output)
	v.SetDefault("format", d.Format)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("tld", d.TLD)
	v.SetDefault("max_retries", d.MaxRetries)
	v.SetDefault("legacy_ipv6", d.LegacyIPv6)
	v.SetDefault("ttl", d.TTL)
	v.SetDefault("debug", d.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags to config: %w", bindErr)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", cfg.Count)
	}
	if cfg.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1, got %d", cfg.MaxRetries)
	}

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	cfg.Format = string(format)

	cfg.TLD = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(cfg.TLD), "."))
	if cfg.TLD == "" {
		cfg.TLD = vocabulary.DefaultTLD
	}
	if strings.ContainsAny(cfg.TLD, ". ") {
		return fmt.Errorf("tld must be a single label, got %q", cfg.TLD)
	}

	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	return nil
}

// GeneratorOptions maps the configuration onto generator options
func (cfg *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Count:      cfg.Count,
		TLD:        cfg.TLD,
		MaxRetries: cfg.MaxRetries,
		LegacyIPv6: cfg.LegacyIPv6,
	}
}
