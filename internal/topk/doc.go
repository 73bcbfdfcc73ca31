// Package topk implements bounded top-K selection over a candidate stream.
//
// Three interchangeable strategies are provided: a bounded max-heap, a
// balanced tree, and a buffer-everything sort baseline. For the same input
// and capacity all three finalize to the same sequence (candidates tied on
// every ranking key may appear in either relative order). The strategies
// exist to be benchmarked against each other; see bench_test.go and the
// bench CLI command.
package topk
