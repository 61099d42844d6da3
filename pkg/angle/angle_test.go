package angle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wdsquery/pkg/errors"
)

func TestToDegrees(t *testing.T) {
	c := New()
	ra, dec, err := c.ToDegrees("14 39 36.49400 -60 50 02.3737")
	require.NoError(t, err)
	assert.InDelta(t, 219.9020583, ra, 1e-6)
	assert.InDelta(t, -60.8339927, dec, 1e-6)

	_, dec, err = c.ToDegrees("00 00 00.0 -00 30 00.0")
	require.NoError(t, err)
	assert.InDelta(t, -0.5, dec, 1e-12)
}

func TestToDegreesErrors(t *testing.T) {
	c := New()
	for _, in := range []string{
		"",
		"14 39 36.4",
		"14 39 xx -60 50 02.3",
		"24 00 00 +10 00 00",
		"12 61 00 +10 00 00",
		"12 00 00 +91 00 00",
	} {
		_, _, err := c.ToDegrees(in)
		assert.True(t, errors.IsParse(err), in)
	}
}

func TestFormat(t *testing.T) {
	var c Converter
	tests := []struct {
		name    string
		ra, dec float64
		wantRA  string
		wantDec string
	}{
		{"alpha cen", 219.9020583, -60.8339927, "14:39:36.5", "-60:50:02.4"},
		{"positive dec", 37.9529, 89.2641, "2:31:48.7", "89:15:50.8"},
		{"carry into minutes", 15 * (1 + 59.0/60 + 59.96/3600), 0, "2:00:00.0", "0:00:00.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, dec := c.Format(tt.ra, tt.dec)
			assert.Equal(t, tt.wantRA, ra)
			assert.Equal(t, tt.wantDec, dec)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	c := New()
	ra, dec, err := c.ToDegrees("05 14 32.27210 -08 12 05.8981")
	require.NoError(t, err)
	raStr, decStr := c.Format(ra, dec)
	assert.Equal(t, "5:14:32.3", raStr)
	assert.Equal(t, "-8:12:05.9", decStr)
}
