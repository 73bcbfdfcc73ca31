// Package usecase wires the decode, normalize and selection stages into
// complete runs.
package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/skeeto/showerthoughts/internal/decode"
	"github.com/skeeto/showerthoughts/internal/domain"
	"github.com/skeeto/showerthoughts/internal/ports"
	"github.com/skeeto/showerthoughts/internal/topk"
)

// ctxCheckEvery bounds how stale a cancellation can go unnoticed.
const ctxCheckEvery = 1024

// SelectTop runs one bounded selection pass over a record stream.
type SelectTop struct {
	newSelector func(topk.Strategy, int) (ports.Selector, error)
	log         *slog.Logger
}

func NewSelectTop(log *slog.Logger) *SelectTop {
	if log == nil {
		log = slog.Default()
	}
	return &SelectTop{
		newSelector: topk.New,
		log:         log,
	}
}

// Params configures a single pass.
type Params struct {
	K        int
	Strategy topk.Strategy
	Fields   domain.FieldMap
	Input    string // label for the report, e.g. a file path
}

// Selection is the local result of one pass. Nothing outlives it: the
// selector, its working set and every counter are torn down or handed
// over here.
type Selection struct {
	Candidates []domain.Candidate
	Report     domain.RunReport
}

// Execute decodes r, normalizes each record, offers the valid ones to a
// fresh selector and finalizes it. Malformed records are dropped and
// counted; a read failure aborts the pass.
func (uc *SelectTop) Execute(ctx context.Context, r io.Reader, p Params) (Selection, error) {
	sel, err := uc.newSelector(p.Strategy, p.K)
	if err != nil {
		return Selection{}, err
	}

	dec := decode.NewDecoder(r)
	norm := decode.NewNormalizer(p.Fields)

	report := domain.RunReport{
		Input:     p.Input,
		Strategy:  string(p.Strategy),
		K:         p.K,
		StartedAt: time.Now().UTC(),
	}

	for {
		if report.Decoded%ctxCheckEvery == 0 {
			if cerr := ctx.Err(); cerr != nil {
				return Selection{}, &domain.OpError{
					Op:   "select.run",
					Kind: domain.KindExecution,
					Err:  cerr,
				}
			}
		}

		raw, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Selection{}, &domain.OpError{
				Op:   "select.read",
				Kind: domain.KindIO,
				Path: p.Input,
				Err:  err,
			}
		}
		report.Decoded++

		c, nerr := norm.Normalize(raw)
		if nerr != nil {
			// Expected in a lossily pre-filtered corpus; drop and go on.
			report.Malformed++
			continue
		}

		sel.Offer(c)
		report.Offered++
	}

	out := sel.Finalize()
	report.Selected = len(out)
	report.EndedAt = time.Now().UTC()

	uc.log.Info("select.finished",
		"strategy", report.Strategy,
		"k", report.K,
		"decoded", report.Decoded,
		"malformed", report.Malformed,
		"selected", report.Selected,
		"duration", report.Duration().String(),
	)

	return Selection{Candidates: out, Report: report}, nil
}
