package tui

import (
	"log/slog"

	"github.com/skeeto/showerthoughts/internal/domain"
)

type Deps struct {
	// Candidates is the finalized best-first selection to browse.
	Candidates []domain.Candidate
	// Width is the wrap column used for entry previews.
	Width int

	Logger *slog.Logger
}
