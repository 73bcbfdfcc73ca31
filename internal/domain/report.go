package domain

import "time"

// RunReport summarizes one selection pass. Every counter is produced and
// returned by the run itself; nothing accumulates process-wide, so reports
// from concurrent or repeated runs never bleed into each other.
type RunReport struct {
	Input    string `json:"input,omitempty"`
	Strategy string `json:"strategy"`
	K        int    `json:"k"`

	Decoded   int `json:"decoded"`   // objects the decoder produced
	Malformed int `json:"malformed"` // records dropped by the normalizer
	Offered   int `json:"offered"`   // valid candidates fed to the selector
	Selected  int `json:"selected"`  // candidates in the finalized set

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Duration is the wall-clock time of the pass.
func (r RunReport) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
