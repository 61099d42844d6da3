// Package config registers wdsquery configuration keys with Viper.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agentstation/wdsquery/pkg/constants"
)

// Configuration keys.
const (
	KeyWDSFile     = "wds_file"
	KeyMaxMagDiff  = "max_mag_diff"
	KeyFilter      = "filter"
	KeySimbadURL   = "simbad_url"
	KeyCacheDir    = "cache_dir"
	KeyUseCache    = "use_cache"
	KeyQueryDelay  = "query_delay"
	KeyHTTPTimeout = "http_timeout"
	KeyAliasesFile = "aliases_file"
	KeyNameColumn  = "name_column"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyLogOutput   = "log_output"
)

// Keys lists every registered key.
func Keys() []string {
	return []string{
		KeyWDSFile, KeyMaxMagDiff, KeyFilter, KeySimbadURL, KeyCacheDir,
		KeyUseCache, KeyQueryDelay, KeyHTTPTimeout, KeyAliasesFile,
		KeyNameColumn, KeyLogLevel, KeyLogFormat, KeyLogOutput,
	}
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyWDSFile, "")
	v.SetDefault(KeyMaxMagDiff, constants.DefaultMaxMagDiff)
	v.SetDefault(KeyFilter, constants.DefaultFilterPolicy)
	v.SetDefault(KeySimbadURL, constants.DefaultSimbadURL)
	v.SetDefault(KeyCacheDir, constants.DefaultCacheDir)
	v.SetDefault(KeyUseCache, true)
	v.SetDefault(KeyQueryDelay, constants.SimbadQueryDelay)
	v.SetDefault(KeyHTTPTimeout, constants.DefaultHTTPTimeout)
	v.SetDefault(KeyAliasesFile, constants.DefaultAliasFile)
	v.SetDefault(KeyNameColumn, constants.DefaultNameColumn)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyLogOutput, "stderr")
}

// BindEnv makes every key readable from WDSQUERY_<KEY> environment
// variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// New returns a Viper instance with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

// Settings is the resolved configuration.
type Settings struct {
	WDSFile     string        `mapstructure:"wds_file"`
	MaxMagDiff  float64       `mapstructure:"max_mag_diff"`
	Filter      string        `mapstructure:"filter"`
	SimbadURL   string        `mapstructure:"simbad_url"`
	CacheDir    string        `mapstructure:"cache_dir"`
	UseCache    bool          `mapstructure:"use_cache"`
	QueryDelay  time.Duration `mapstructure:"query_delay"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	AliasesFile string        `mapstructure:"aliases_file"`
	NameColumn  string        `mapstructure:"name_column"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFormat   string        `mapstructure:"log_format"`
	LogOutput   string        `mapstructure:"log_output"`
}

// Load reads the resolved settings from v.
func Load(v *viper.Viper) Settings {
	return Settings{
		WDSFile:     v.GetString(KeyWDSFile),
		MaxMagDiff:  v.GetFloat64(KeyMaxMagDiff),
		Filter:      v.GetString(KeyFilter),
		SimbadURL:   v.GetString(KeySimbadURL),
		CacheDir:    v.GetString(KeyCacheDir),
		UseCache:    v.GetBool(KeyUseCache),
		QueryDelay:  v.GetDuration(KeyQueryDelay),
		HTTPTimeout: v.GetDuration(KeyHTTPTimeout),
		AliasesFile: v.GetString(KeyAliasesFile),
		NameColumn:  v.GetString(KeyNameColumn),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		LogOutput:   v.GetString(KeyLogOutput),
	}
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(v *viper.Viper, key string) string {
	viperValue := v.GetString(key)
	if viperValue != "" {
		return viperValue
	}
	return os.Getenv(key)
}
