package services

import "sync/atomic"

// RequestGuard implements the stale-response discard: each user action for
// a logical query begins a new token, invalidating every earlier in-flight
// fetch. Callers check the token when a result arrives and drop results
// whose token is no longer current. Safe for concurrent use.
type RequestGuard struct {
	current atomic.Uint64
}

// Begin issues a new token, superseding all previously issued ones.
func (g *RequestGuard) Begin() uint64 {
	return g.current.Add(1)
}

// Valid reports whether token is still the latest issued one.
func (g *RequestGuard) Valid(token uint64) bool {
	return g.current.Load() == token
}
