package app

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/wdsquery/internal/cmd/globals"
	"github.com/agentstation/wdsquery/internal/config"
	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Explicit --log-level flag
	LogLevel string

	// Command-line overrides of settings
	WDSFile     string
	CacheDir    string
	AliasesFile string
	NoCache     bool

	// AliasesExplicit is set when the alias file was named by flag,
	// environment or config file rather than defaulted.
	AliasesExplicit bool

	// Settings are the resolved wdsquery settings
	Settings config.Settings

	v *viper.Viper
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by ApplyFlags)
// 2. Environment variables (WDSQUERY_*)
// 3. .env files
// 4. Config file (~/.wdsquery.yaml or ./.wdsquery.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := config.New()

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(constants.ConfigFileName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config file", err.Error(), err)
		}
	}

	cfg := &Config{v: v}
	cfg.reload()
	return cfg, nil
}

// ReadConfigFile reads an explicitly named config file.
func (c *Config) ReadConfigFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return errors.NewConfigError("config file", path, err)
	}
	c.ConfigFile = c.v.ConfigFileUsed()
	c.reload()
	return nil
}

// ApplyFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) ApplyFlags(flags *globals.Flags, logLevel string) {
	c.Verbose = flags.Verbose
	c.Quiet = flags.Quiet
	c.NoColor = flags.NoColor
	if flags.Output != "" {
		c.Format = flags.Output
	}
	c.LogLevel = logLevel

	if c.WDSFile != "" {
		c.Settings.WDSFile = c.WDSFile
	}
	if c.CacheDir != "" {
		c.Settings.CacheDir = c.CacheDir
	}
	if c.AliasesFile != "" {
		c.Settings.AliasesFile = c.AliasesFile
		c.AliasesExplicit = true
	}
	if c.NoCache {
		c.Settings.UseCache = false
	}
}

func (c *Config) reload() {
	c.Settings = config.Load(c.v)
	c.ConfigFile = c.v.ConfigFileUsed()
	c.AliasesExplicit = c.v.InConfig(config.KeyAliasesFile) ||
		os.Getenv(constants.EnvPrefix+"_ALIASES_FILE") != ""
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}
