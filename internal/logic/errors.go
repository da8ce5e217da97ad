package logic

import "errors"

// Outcome taxonomy shared by the store and aggregation services. Handlers
// are the only layer that translates these into HTTP status codes.
var (
	// ErrStoreUnavailable wraps any driver-level connection or query
	// failure. Callers must not assume partial results alongside it.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvalidTag is returned before any store access when a player
	// tag is missing or empty.
	ErrInvalidTag = errors.New("player tag is required")

	// ErrNoWarsFound means the recency window itself is empty: no wars
	// exist to participate in. Distinct from ErrNoParticipation.
	ErrNoWarsFound = errors.New("no wars found in window")

	// ErrNoParticipation means wars exist in the window but the player
	// has no attacks in any of them.
	ErrNoParticipation = errors.New("player has no attacks in window")

	ErrPlayerNotFound = errors.New("player not found")
	ErrWarNotFound    = errors.New("war not found")
	ErrRaidNotFound   = errors.New("capital raid not found")
)
