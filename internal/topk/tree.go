package topk

import (
	"github.com/google/btree"

	"github.com/skeeto/showerthoughts/internal/domain"
)

// treeSelector keeps the working set in a balanced tree ordered best-first.
// A per-selector sequence number keeps full-tuple ties distinct in the tree
// (ReplaceOrInsert would otherwise collapse them) and resolves their
// relative order to insertion order.
type treeSelector struct {
	k    int
	seq  uint64
	tree *btree.BTreeG[rankedItem]
}

type rankedItem struct {
	c   domain.Candidate
	seq uint64
}

func rankedLess(a, b rankedItem) bool {
	if c := domain.Compare(a.c, b.c); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func newTreeSelector(k int) *treeSelector {
	return &treeSelector{
		k:    k,
		tree: btree.NewG(32, rankedLess),
	}
}

func (s *treeSelector) Offer(c domain.Candidate) {
	if s.tree.Len() == s.k {
		worst, _ := s.tree.Max()
		if !domain.Better(c, worst.c) {
			return
		}
		s.tree.DeleteMax()
	}
	s.seq++
	s.tree.ReplaceOrInsert(rankedItem{c: c, seq: s.seq})
}

func (s *treeSelector) Finalize() []domain.Candidate {
	out := make([]domain.Candidate, 0, s.tree.Len())
	s.tree.Ascend(func(it rankedItem) bool {
		out = append(out, it.c)
		return true
	})
	s.tree = nil
	return out
}
