package topk

import (
	"fmt"

	"github.com/skeeto/showerthoughts/internal/domain"
	"github.com/skeeto/showerthoughts/internal/ports"
)

// Strategy names a selector implementation.
type Strategy string

const (
	// StrategyHeap is a bounded max-heap: O(log K) offer, O(K log K)
	// finalize, O(K) memory. The default.
	StrategyHeap Strategy = "heap"
	// StrategyTree is a balanced tree ordered best-first: O(log K) offer,
	// O(K) finalize, O(K) memory.
	StrategyTree Strategy = "tree"
	// StrategySort buffers every candidate and sorts once at finalize.
	// O(N) memory, so it is a correctness and benchmarking baseline, not
	// a production choice.
	StrategySort Strategy = "sort"
)

// Strategies lists every implementation, in the order bench reports them.
func Strategies() []Strategy {
	return []Strategy{StrategyHeap, StrategyTree, StrategySort}
}

// ParseStrategy validates a strategy name from config or flags.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyHeap, StrategyTree, StrategySort:
		return Strategy(s), nil
	default:
		return "", &domain.OpError{
			Op:   "topk.parse_strategy",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown strategy %q (expected heap|tree|sort): %w", s, domain.ErrInvalidConfig),
		}
	}
}

// New constructs a selector with capacity k.
func New(strategy Strategy, k int) (ports.Selector, error) {
	if k < 1 {
		return nil, &domain.OpError{
			Op:   "topk.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("capacity must be >= 1, got %d: %w", k, domain.ErrInvalidConfig),
		}
	}

	switch strategy {
	case StrategyHeap:
		return newHeapSelector(k), nil
	case StrategyTree:
		return newTreeSelector(k), nil
	case StrategySort:
		return newSortSelector(k), nil
	default:
		return nil, &domain.OpError{
			Op:   "topk.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown strategy %q: %w", strategy, domain.ErrInvalidConfig),
		}
	}
}
