package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bryanCE/dnsgen/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs)
	fs.Bool("debug", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(newFlags(t), "")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 500, cfg.Count)
	assert.Equal(t, "generate.json", cfg.Output)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "edu", cfg.TLD)
}

func TestLoad_Precedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
count: 10
format: yaml
tld: test
max_retries: 50
ttl: 60
`), 0o644))

	t.Setenv("DNSGEN_COUNT", "20")
	t.Setenv("DNSGEN_LEGACY_IPV6", "true")

	cfg, err := config.Load(newFlags(t, "--count", "30", "--seed", "42", "--debug"), cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Count, "flag beats env and file")
	assert.True(t, cfg.LegacyIPv6, "env beats default")
	assert.Equal(t, "yaml", cfg.Format, "file beats default")
	assert.Equal(t, "test", cfg.TLD)
	assert.Equal(t, 50, cfg.MaxRetries)
	assert.Equal(t, uint32(60), cfg.TTL)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "dnsgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("count: 10\n"), 0o644))
	t.Setenv("DNSGEN_COUNT", "20")

	cfg, err := config.Load(nil, cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Count)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"defaults", func(*config.Config) {}, true},
		{"zero count", func(c *config.Config) { c.Count = 0 }, false},
		{"negative retries", func(c *config.Config) { c.MaxRetries = -1 }, false},
		{"bad format", func(c *config.Config) { c.Format = "xml" }, false},
		{"dotted tld", func(c *config.Config) { c.TLD = "co.uk" }, false},
		{"leading dot tld", func(c *config.Config) { c.TLD = ".ORG" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Normalizes(t *testing.T) {
	cfg := config.Default()
	cfg.TLD = " .ORG "
	cfg.Format = "YML"
	cfg.Output = ""
	cfg.TTL = 0

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "org", cfg.TLD)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, config.DefaultOutput, cfg.Output)
	assert.Equal(t, uint32(config.DefaultTTL), cfg.TTL)
}

func TestGeneratorOptions(t *testing.T) {
	cfg := config.Default()
	cfg.LegacyIPv6 = true

	opts := cfg.GeneratorOptions()
	assert.Equal(t, cfg.Count, opts.Count)
	assert.Equal(t, cfg.TLD, opts.TLD)
	assert.Equal(t, cfg.MaxRetries, opts.MaxRetries)
	assert.True(t, opts.LegacyIPv6)
}
