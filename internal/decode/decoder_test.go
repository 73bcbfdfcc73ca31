package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"testing"
)

func collect(t *testing.T, input string) []map[string]any {
	t.Helper()
	d := NewDecoder(strings.NewReader(input))
	var out []map[string]any
	for {
		obj, err := d.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, obj)
	}
}

func TestDecoder_Empty(t *testing.T) {
	if got := collect(t, ""); len(got) != 0 {
		t.Fatalf("expected no objects, got %d", len(got))
	}
}

func TestDecoder_SingleObject(t *testing.T) {
	got := collect(t, `{"title":"hi"}`)
	if len(got) != 1 {
		t.Fatalf("expected 1 object, got %d", len(got))
	}
	if got[0]["title"] != "hi" {
		t.Fatalf("unexpected title: %v", got[0]["title"])
	}
}

func TestDecoder_ConcatenatedNoSeparator(t *testing.T) {
	got := collect(t, `{"a":1}{"b":2}{"c":3}`)
	if len(got) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(got))
	}
}

func TestDecoder_WhitespaceAndNewlines(t *testing.T) {
	got := collect(t, "{\"a\":1}\n\n  {\"b\":2}\t{\"c\":3}\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(got))
	}
}

func TestDecoder_SkipsMalformedFragment(t *testing.T) {
	// Resync scans for the next '{' past the broken fragment's own, so a
	// well-formed object nested inside a truncated one is rescued.
	got := collect(t, `{"a":1}{"broken":  {"b":2}`)
	if len(got) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(got))
	}
	if got[0]["a"] == nil || got[1]["b"] == nil {
		t.Fatalf("unexpected objects: %v", got)
	}

	got2 := collect(t, `{"a":1}{oops}{"b":2}`)
	if len(got2) != 2 {
		t.Fatalf("expected 2 objects around the garbage, got %d", len(got2))
	}
}

func TestDecoder_NonObjectValues(t *testing.T) {
	got := collect(t, `{"a":1} [1,2,3] "noise" 42 true null {"b":2}`)
	if len(got) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(got))
	}
	if got[0]["a"] == nil || got[1]["b"] == nil {
		t.Fatalf("unexpected objects: %v", got)
	}
}

// Every malformed fragment must cost at least one byte of progress, so a
// corpus riddled with them still terminates with all good objects found.
func TestDecoder_ManyMalformedFragments(t *testing.T) {
	var in strings.Builder
	const n = 500
	for i := 0; i < n; i++ {
		fmt.Fprintf(&in, `{bad %d}{"i":%d}`, i, i)
	}
	got := collect(t, in.String())
	if len(got) != n {
		t.Fatalf("expected %d objects, got %d", n, len(got))
	}
}

func TestDecoder_GarbageBetweenObjects(t *testing.T) {
	got := collect(t, `noise [1,2,3] {"a":1} more "noise" {"b":2} trailing`)
	if len(got) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(got))
	}
}

func TestDecoder_TruncatedFinalObject(t *testing.T) {
	got := collect(t, `{"a":1}{"b":`)
	if len(got) != 1 {
		t.Fatalf("expected 1 object, got %d", len(got))
	}
}

func TestDecoder_NumbersStayExact(t *testing.T) {
	got := collect(t, `{"created_utc":1477958400}`)
	if len(got) != 1 {
		t.Fatalf("expected 1 object, got %d", len(got))
	}
	num, ok := got[0]["created_utc"].(json.Number)
	if !ok {
		t.Fatalf("expected a json.Number, got %T", got[0]["created_utc"])
	}
	if num.String() != "1477958400" {
		t.Fatalf("expected 1477958400, got %s", num.String())
	}
}

func TestDecoder_NestedObjects(t *testing.T) {
	got := collect(t, `{"a":{"nested":true},"b":[{"x":1}]}{"c":2}`)
	if len(got) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(got))
	}
}

// A full pass must not retain per-record state: live heap after decoding
// a large corpus stays flat regardless of the record count.
func TestDecoder_MemoryBoundedByRecord(t *testing.T) {
	var in strings.Builder
	const n = 50_000
	for i := 0; i < n; i++ {
		fmt.Fprintf(&in, `{"score":%d,"title":"thought %d"}`, i, i)
	}
	input := in.String()

	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	d := NewDecoder(strings.NewReader(input))
	decoded := 0
	for {
		_, err := d.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		decoded++
	}
	if decoded != n {
		t.Fatalf("expected %d records, got %d", n, decoded)
	}

	// The decoder is kept live across the measurement so anything it
	// accumulated per record would show up in the delta.
	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	runtime.KeepAlive(d)

	if grew := int64(after.HeapAlloc) - int64(before.HeapAlloc); grew > 8<<20 {
		t.Fatalf("live heap grew by %d bytes over %d records", grew, decoded)
	}
}
