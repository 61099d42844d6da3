package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/wdsquery/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "wds system",
			ID:       "14396-6050",
		}
		assert.Equal(t, "wds system with ID 14396-6050 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("simbad object", "psi Psc")
		wrapped := fmt.Errorf("query: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
		assert.False(t, pkgerrors.IsEmptyResult(wrapped))
	})
}

func TestEmptyResultError(t *testing.T) {
	err := pkgerrors.NewEmptyResultError("00001+0001", "positive")
	assert.Equal(t, "all components of 00001+0001 removed by positive filter", err.Error())
	assert.True(t, pkgerrors.IsEmptyResult(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestUnknownPolicyError(t *testing.T) {
	err := pkgerrors.NewUnknownPolicyError("abs")
	assert.Contains(t, err.Error(), `"abs"`)
	assert.True(t, pkgerrors.IsUnknownPolicy(err))
	assert.True(t, pkgerrors.IsValidationError(err))

	var target *pkgerrors.UnknownPolicyError
	require.True(t, errors.As(fmt.Errorf("select: %w", err), &target))
	assert.Equal(t, "abs", target.Policy)
}

func TestMalformedTextError(t *testing.T) {
	t.Run("with fields", func(t *testing.T) {
		err := pkgerrors.NewMalformedTextError("Flux V", "magV")
		assert.Equal(t, `marker "Flux V" not found, no data for [magV]`, err.Error())
		assert.True(t, pkgerrors.IsMalformedText(err))
	})

	t.Run("without fields", func(t *testing.T) {
		err := pkgerrors.NewMalformedTextError("Identifiers")
		assert.Equal(t, `marker "Identifiers" not found`, err.Error())
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "max_mag_diff",
			Message: "must not be negative",
		}
		assert.Equal(t, "validation failed for field max_mag_diff: must not be negative", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
	})
}

func TestAPIError(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		err := pkgerrors.NewAPIError("simbad", 429, "slow down")
		assert.Contains(t, err.Error(), "429")
		assert.True(t, pkgerrors.IsRateLimited(err))
		assert.False(t, pkgerrors.IsServiceUnavailable(err))
	})

	t.Run("server error", func(t *testing.T) {
		err := pkgerrors.NewAPIError("simbad", 503, "maintenance")
		assert.True(t, pkgerrors.IsServiceUnavailable(err))
	})

	t.Run("wrapped", func(t *testing.T) {
		base := errors.New("connection reset")
		err := pkgerrors.WrapAPI("simbad", 0, base)
		assert.Equal(t, "API error from simbad: connection reset", err.Error())
		assert.True(t, errors.Is(err, base))
	})
}

func TestIOAndParseAreDistinct(t *testing.T) {
	ioErr := pkgerrors.WrapIO("open", "wds.dat", errors.New("no such file"))
	parseErr := &pkgerrors.ParseError{Format: "wds", File: "wds.dat", Line: 12, Message: "short line"}

	assert.True(t, pkgerrors.IsIO(ioErr))
	assert.False(t, pkgerrors.IsParse(ioErr))
	assert.True(t, pkgerrors.IsParse(parseErr))
	assert.False(t, pkgerrors.IsIO(parseErr))
	assert.Equal(t, "parse error in wds at wds.dat:12: short line", parseErr.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("csv", "x", nil))
	assert.NoError(t, pkgerrors.WrapValidation("x", nil))
	assert.NoError(t, pkgerrors.WrapAPI("simbad", 0, nil))
}

func TestConfigError(t *testing.T) {
	base := errors.New("bad duration")
	err := pkgerrors.NewConfigError("query_delay", "cannot parse", base)
	assert.Equal(t, "configuration error in query_delay: cannot parse", err.Error())
	assert.True(t, errors.Is(err, base))
}
