package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gamma And   \n  (Almach)", "gamma And"},
		{"γ And", "gamma And"},
		{"α Cen A", "alpha Cen A"},
		{"Ω Cen", "Omega Cen"},
		{"λ Ori", "lamda Ori"},
		{"Barnard’s Star", "Barnard's Star"},
		{"  Polaris (α UMi)  ", "Polaris"},
		{"61 Cyg\r\nA", "61 Cyg A"},
		{"HD 1234", "HD 1234"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestGreek(t *testing.T) {
	s, ok := Greek('β')
	assert.True(t, ok)
	assert.Equal(t, "beta", s)

	s, ok = Greek('Σ')
	assert.True(t, ok)
	assert.Equal(t, "Sigma", s)

	_, ok = Greek('ς')
	assert.False(t, ok)
	_, ok = Greek('a')
	assert.False(t, ok)
}

func TestCleanMainID(t *testing.T) {
	assert.Equal(t, "Barnard's Star", CleanMainID("NAME Barnard's Star"))
	assert.Equal(t, "alf Cen A", CleanMainID("alf Cen A"))
}

func TestGreekAccentedUntouched(t *testing.T) {
	_, ok := Greek('ά')
	assert.False(t, ok)
	_, ok = Greek('Ϊ')
	assert.False(t, ok)
}
