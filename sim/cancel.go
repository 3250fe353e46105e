package sim

import "sync/atomic"

// CancelToken is the optional cancellation token accepted at the
// Simulate API boundary. The integrator checks it before every time
// step (so also between blocks), never between spins, and returns a
// partial signal marked incomplete on cancellation.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken returns a token in the not-cancelled state.
func NewCancelToken() *CancelToken { return &CancelToken{} }

// Cancel marks the token cancelled. Safe to call from any goroutine.
func (c *CancelToken) Cancel() { c.cancelled.Store(true) }

// Cancelled reports whether Cancel has been called.
func (c *CancelToken) Cancelled() bool { return c != nil && c.cancelled.Load() }
