package solver

import "time"

// Options configures a search session.
type Options struct {
	// Observer receives a synchronous event after every placement and
	// every undo. nil disables event delivery.
	Observer Observer

	// Timeout bounds wall-clock search time when positive. Exceeding it
	// surfaces as ErrTimeout.
	Timeout time.Duration
}

// DefaultOptions returns options for an unobserved, unbounded search.
func DefaultOptions() *Options {
	return &Options{}
}
