package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wdsquery/pkg/errors"
)

func TestGetText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/plain", r.Header.Get("Accept"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("Object alf Cen A --- SB*"))
	}))
	defer srv.Close()

	c := New("simbad", WithUserAgent("test-agent"))
	body, err := c.GetText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Object alf Cen A --- SB*", string(body))
}

func TestGetTextStatusErrors(t *testing.T) {
	tests := []struct {
		status    int
		checkKind func(error) bool
	}{
		{http.StatusTooManyRequests, errors.IsRateLimited},
		{http.StatusBadGateway, errors.IsServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "slow down", tt.status)
			}))
			defer srv.Close()

			_, err := New("simbad").GetText(context.Background(), srv.URL)
			require.Error(t, err)
			assert.True(t, tt.checkKind(err))

			var apiErr *errors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "simbad", apiErr.Service)
			assert.Contains(t, apiErr.Message, "slow down")
		})
	}
}

func TestGetTextRequestErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New("simbad").GetText(context.Background(), url)
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "simbad", apiErr.Service)
	assert.Zero(t, apiErr.StatusCode)
	assert.NotNil(t, apiErr.Unwrap())

	_, err = New("simbad").GetText(context.Background(), "http://[::1]:namedport/")
	assert.True(t, errors.IsValidationError(err))
}

func TestGetTextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New("simbad", WithPacer(NewPacer(time.Hour)))
	_, err := c.GetText(ctx, "http://127.0.0.1:0/")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPacerSpacing(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPacer(time.Second)
	p.clock = func() time.Time { return now }

	assert.Equal(t, time.Duration(0), p.reserve())
	assert.Equal(t, time.Second, p.reserve())
	assert.Equal(t, 2*time.Second, p.reserve())

	now = now.Add(10 * time.Second)
	assert.Equal(t, time.Duration(0), p.reserve())
}

func TestPacerWaitConcurrent(t *testing.T) {
	p := NewPacer(20 * time.Millisecond)
	start := time.Now()

	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.Wait(context.Background()))
		}()
	}
	wg.Wait()
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestPacerWaitCancelled(t *testing.T) {
	p := NewPacer(time.Hour)
	require.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Wait(ctx), context.DeadlineExceeded)
}

func TestNilAndZeroPacer(t *testing.T) {
	var p *Pacer
	assert.NoError(t, p.Wait(context.Background()))
	assert.NoError(t, NewPacer(0).Wait(context.Background()))
}
