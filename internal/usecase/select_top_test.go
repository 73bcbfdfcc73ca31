package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/skeeto/showerthoughts/internal/domain"
	"github.com/skeeto/showerthoughts/internal/topk"
)

func obj(score int, title string, utc any) string {
	switch v := utc.(type) {
	case string:
		return fmt.Sprintf(`{"score":%d,"title":%q,"author":"tester","created_utc":%q}`, score, title, v)
	default:
		return fmt.Sprintf(`{"score":%d,"title":%q,"author":"tester","created_utc":%v}`, score, title, v)
	}
}

func execute(t *testing.T, input string, k int, st topk.Strategy) Selection {
	t.Helper()
	uc := NewSelectTop(nil)
	sel, err := uc.Execute(context.Background(), strings.NewReader(input), Params{
		K:        k,
		Strategy: st,
		Fields:   domain.DefaultFieldMap(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sel
}

func TestExecute_WorkedExample(t *testing.T) {
	input := obj(100, "A", 1000) + obj(100, "B", 500) + obj(50, "C", 1)

	sel := execute(t, input, 2, topk.StrategyHeap)
	if len(sel.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(sel.Candidates))
	}
	if sel.Candidates[0].Title != "B" || sel.Candidates[1].Title != "A" {
		t.Fatalf("unexpected order: %+v", sel.Candidates)
	}
	if sel.Report.Decoded != 3 || sel.Report.Offered != 3 || sel.Report.Selected != 2 {
		t.Fatalf("unexpected report: %+v", sel.Report)
	}
}

// A stream with malformed records mixed in must finalize exactly like a
// stream containing only the valid records.
func TestExecute_MalformedRecordsAreSkipped(t *testing.T) {
	valid := obj(10, "keep one", 1) + obj(20, "keep two", 2) + obj(5, "keep three", 3)
	dirty := `garbage ` +
		obj(10, "keep one", 1) +
		`{"score":"high","title":"bad score","author":"x","created_utc":1}` +
		obj(20, "keep two", 2) +
		`{"title":"no score","author":"x","created_utc":1}` +
		`{"score":3,"title":"","author":"x","created_utc":1}` +
		obj(5, "keep three", 3) +
		`{"trunca`

	clean := execute(t, valid, 10, topk.StrategyHeap)
	messy := execute(t, dirty, 10, topk.StrategyHeap)

	if len(messy.Candidates) != len(clean.Candidates) {
		t.Fatalf("expected %d candidates, got %d", len(clean.Candidates), len(messy.Candidates))
	}
	for i := range clean.Candidates {
		if clean.Candidates[i] != messy.Candidates[i] {
			t.Fatalf("position %d differs: %+v vs %+v", i, clean.Candidates[i], messy.Candidates[i])
		}
	}
	if messy.Report.Malformed != 3 {
		t.Fatalf("expected 3 malformed records, got %d", messy.Report.Malformed)
	}
}

func TestExecute_TimestampNormalization(t *testing.T) {
	asInt := execute(t, obj(1, "t", 1477958400), 1, topk.StrategyHeap)
	asString := execute(t, obj(1, "t", "1477958400"), 1, topk.StrategyHeap)
	if asInt.Candidates[0] != asString.Candidates[0] {
		t.Fatalf("expected identical candidates, got %+v and %+v",
			asInt.Candidates[0], asString.Candidates[0])
	}
}

func TestExecute_AllStrategiesAgree(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString(obj(i%37, fmt.Sprintf("title %d", i%91), i%53))
	}
	input := sb.String()

	baseline := execute(t, input, 25, topk.StrategySort)
	for _, st := range []topk.Strategy{topk.StrategyHeap, topk.StrategyTree} {
		got := execute(t, input, 25, st)
		if len(got.Candidates) != len(baseline.Candidates) {
			t.Fatalf("%s: expected %d candidates, got %d", st, len(baseline.Candidates), len(got.Candidates))
		}
		for i := range got.Candidates {
			if !domain.Equivalent(got.Candidates[i], baseline.Candidates[i]) {
				t.Fatalf("%s: position %d differs: %+v vs %+v",
					st, i, got.Candidates[i], baseline.Candidates[i])
			}
		}
	}
}

func TestExecute_EmptyInput(t *testing.T) {
	sel := execute(t, "", 10, topk.StrategyHeap)
	if len(sel.Candidates) != 0 {
		t.Fatalf("expected no candidates, got %d", len(sel.Candidates))
	}
	if sel.Report.Decoded != 0 || sel.Report.Selected != 0 {
		t.Fatalf("unexpected report: %+v", sel.Report)
	}
}

func TestExecute_InvalidParams(t *testing.T) {
	uc := NewSelectTop(nil)
	if _, err := uc.Execute(context.Background(), strings.NewReader(""), Params{K: 0, Strategy: topk.StrategyHeap}); err == nil {
		t.Fatalf("expected error for k=0")
	}
	if _, err := uc.Execute(context.Background(), strings.NewReader(""), Params{K: 1, Strategy: "bogus"}); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestExecute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewSelectTop(nil)
	_, err := uc.Execute(ctx, strings.NewReader(obj(1, "t", 1)), Params{K: 1, Strategy: topk.StrategyHeap})
	if err == nil {
		t.Fatalf("expected error for cancelled context")
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected kind execution, got: %v", err)
	}
}
