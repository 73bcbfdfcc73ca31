package topk

import (
	"slices"

	"github.com/skeeto/showerthoughts/internal/domain"
)

// sortSelector buffers every offered candidate and pays one O(N log N)
// stable sort at finalize. It ignores the O(K) memory bound, which is the
// point: it is the trivially-correct baseline the bounded strategies are
// checked and benchmarked against.
type sortSelector struct {
	k   int
	buf []domain.Candidate
}

func newSortSelector(k int) *sortSelector {
	return &sortSelector{k: k}
}

func (s *sortSelector) Offer(c domain.Candidate) {
	s.buf = append(s.buf, c)
}

func (s *sortSelector) Finalize() []domain.Candidate {
	slices.SortStableFunc(s.buf, domain.Compare)
	n := min(s.k, len(s.buf))
	out := make([]domain.Candidate, n)
	copy(out, s.buf[:n])
	s.buf = nil
	return out
}
