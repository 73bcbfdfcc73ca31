package ports

import "github.com/skeeto/showerthoughts/internal/domain"

// Selector maintains a bounded working set of the best candidates seen so
// far in a stream.
type Selector interface {
	// Offer feeds one candidate. The selector retains it only while it
	// ranks among the best K offered so far; everything else is discarded
	// with no state change.
	Offer(c domain.Candidate)

	// Finalize returns the working set best-first. Call once, after the
	// stream is exhausted; the selector may tear down its state.
	Finalize() []domain.Candidate
}
