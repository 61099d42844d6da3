package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/wdsquery/pkg/constants"
)

func TestDefaults(t *testing.T) {
	s := Load(New())

	assert.Equal(t, constants.DefaultMaxMagDiff, s.MaxMagDiff)
	assert.Equal(t, "negative", s.Filter)
	assert.Equal(t, constants.DefaultSimbadURL, s.SimbadURL)
	assert.Equal(t, "Simbad", s.CacheDir)
	assert.True(t, s.UseCache)
	assert.Equal(t, 1500*time.Millisecond, s.QueryDelay)
	assert.Equal(t, 5*time.Second, s.HTTPTimeout)
	assert.Equal(t, "Star", s.NameColumn)
	assert.Equal(t, "info", s.LogLevel)
	assert.Empty(t, s.WDSFile)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("WDSQUERY_MAX_MAG_DIFF", "4.5")
	t.Setenv("WDSQUERY_FILTER", "abc")
	t.Setenv("WDSQUERY_USE_CACHE", "false")
	t.Setenv("WDSQUERY_QUERY_DELAY", "250ms")
	t.Setenv("WDSQUERY_WDS_FILE", "wds.dat")

	s := Load(New())
	assert.Equal(t, 4.5, s.MaxMagDiff)
	assert.Equal(t, "abc", s.Filter)
	assert.False(t, s.UseCache)
	assert.Equal(t, 250*time.Millisecond, s.QueryDelay)
	assert.Equal(t, "wds.dat", s.WDSFile)
}

func TestGetString(t *testing.T) {
	v := New()
	v.Set("custom", "from-viper")
	assert.Equal(t, "from-viper", GetString(v, "custom"))

	t.Setenv("PLAIN_VAR", "from-env")
	assert.Equal(t, "from-env", GetString(v, "PLAIN_VAR"))
}

func TestKeysAreRegistered(t *testing.T) {
	v := New()
	for _, k := range Keys() {
		assert.NotNil(t, v.Get(k), k)
	}
}
