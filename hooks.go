package wdsquery

import (
	"sync"
)

// Hook function types for query events
type (
	// LookupHook is called before an identifier is fetched
	LookupHook func(name, ident string)

	// RecordHook is called when a record was parsed
	RecordHook func(r Result)

	// FailureHook is called when Simbad did not know an identifier
	FailureHook func(name string, err error)
)

// Hooks registers callbacks for query progress.
type Hooks interface {
	OnLookup(fn LookupHook)
	OnRecord(fn RecordHook)
	OnFailure(fn FailureHook)
}

// hooks manages event callbacks for queries
type hooks struct {
	mu        sync.RWMutex
	onLookup  []LookupHook
	onRecord  []RecordHook
	onFailure []FailureHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnLookup registers a callback for when an identifier is about to be fetched
func (h *hooks) OnLookup(fn LookupHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onLookup = append(h.onLookup, fn)
}

// OnRecord registers a callback for parsed records
func (h *hooks) OnRecord(fn RecordHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecord = append(h.onRecord, fn)
}

// OnFailure registers a callback for failed queries
func (h *hooks) OnFailure(fn FailureHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onFailure = append(h.onFailure, fn)
}

func (h *hooks) triggerLookup(name, ident string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onLookup {
		hook(name, ident)
	}
}

func (h *hooks) triggerRecord(r Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onRecord {
		hook(r)
	}
}

func (h *hooks) triggerFailure(name string, err error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onFailure {
		hook(name, err)
	}
}

// OnLookup implements Hooks.
func (c *client) OnLookup(fn LookupHook) { c.hooks.OnLookup(fn) }

// OnRecord implements Hooks.
func (c *client) OnRecord(fn RecordHook) { c.hooks.OnRecord(fn) }

// OnFailure implements Hooks.
func (c *client) OnFailure(fn FailureHook) { c.hooks.OnFailure(fn) }
