package topk

import (
	"container/heap"
	"slices"

	"github.com/skeeto/showerthoughts/internal/domain"
)

// heapSelector keeps the working set in a max-heap whose root is the
// least-preferred retained candidate, so a full set answers "who would be
// evicted" in O(1) and replaces it in O(log K).
type heapSelector struct {
	k     int
	items worstFirst
}

// worstFirst orders the heap so the root is the maximal element under the
// ranking order, i.e. the worst retained candidate.
type worstFirst []domain.Candidate

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return domain.Better(h[j], h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *worstFirst) Push(x any) {
	*h = append(*h, x.(domain.Candidate))
}

func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

func newHeapSelector(k int) *heapSelector {
	return &heapSelector{
		k:     k,
		items: make(worstFirst, 0, k),
	}
}

func (s *heapSelector) Offer(c domain.Candidate) {
	if len(s.items) < s.k {
		heap.Push(&s.items, c)
		return
	}
	if domain.Better(c, s.items[0]) {
		s.items[0] = c
		heap.Fix(&s.items, 0)
	}
}

func (s *heapSelector) Finalize() []domain.Candidate {
	out := make([]domain.Candidate, len(s.items))
	copy(out, s.items)
	s.items = nil
	slices.SortFunc(out, domain.Compare)
	return out
}
