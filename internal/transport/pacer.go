package transport

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum interval between successive requests. Callers
// are served in the order they reserve a slot. It is safe for concurrent
// use.
type Pacer struct {
	interval time.Duration
	clock    func() time.Time

	mu   sync.Mutex
	next time.Time
}

// NewPacer returns a Pacer spacing requests at least interval apart. A
// zero interval never waits.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval, clock: time.Now}
}

// Interval returns the configured spacing.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// reserve claims the next slot and returns how long to wait for it.
func (p *Pacer) reserve() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock()
	at := now
	if p.next.After(now) {
		at = p.next
	}
	p.next = at.Add(p.interval)
	return at.Sub(now)
}

// Wait blocks until the caller may issue a request or ctx is done. The
// first request never waits.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.interval <= 0 {
		return ctx.Err()
	}
	delay := p.reserve()
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
