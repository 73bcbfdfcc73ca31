package fortune

import (
	"bufio"
	"io"

	"github.com/skeeto/showerthoughts/internal/domain"
)

// WriteAll renders candidates to w in the order given (callers pass the
// finalized best-first sequence). Writes are buffered; any failure is a
// fatal i/o error.
func WriteAll(w io.Writer, candidates []domain.Candidate, width int) error {
	bw := bufio.NewWriter(w)
	for _, c := range candidates {
		if _, err := bw.WriteString(Render(c, width)); err != nil {
			return writeErr(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return writeErr(err)
	}
	return nil
}

func writeErr(err error) error {
	return &domain.OpError{
		Op:   "fortune.write",
		Kind: domain.KindIO,
		Err:  err,
	}
}
