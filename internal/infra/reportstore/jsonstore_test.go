package reportstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/skeeto/showerthoughts/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func sampleReport() domain.RunReport {
	return domain.RunReport{
		Input:     "dump.json",
		Strategy:  "heap",
		K:         100,
		Decoded:   5000,
		Malformed: 12,
		Offered:   4988,
		Selected:  100,
		StartedAt: fixedNow(),
		EndedAt:   fixedNow().Add(3 * time.Second),
	}
}

func TestSaveReport_WritesArtifact(t *testing.T) {
	root := t.TempDir()
	store := NewJSONStore(root, domain.DefaultConfig(), WithNow(fixedNow))

	id, err := store.SaveReport(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(id, "20240301T120000Z_dump-json_heap") {
		t.Fatalf("unexpected id: %q", id)
	}

	path := filepath.Join(root, "runs", id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}

	var got domain.RunReport
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if got.Selected != 100 || got.Strategy != "heap" {
		t.Fatalf("unexpected artifact: %+v", got)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("tmp file left behind")
	}
}

func TestSaveReport_StdinLabel(t *testing.T) {
	root := t.TempDir()
	store := NewJSONStore(root, domain.DefaultConfig(), WithNow(fixedNow))

	r := sampleReport()
	r.Input = ""
	r.StartedAt = time.Time{}
	r.EndedAt = time.Time{}

	id, err := store.SaveReport(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(id, "stdin") {
		t.Fatalf("expected stdin slug, got %q", id)
	}
}

func TestSaveReport_Index(t *testing.T) {
	root := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.RunsDir = "artifacts"
	store := NewJSONStore(root, cfg, WithNow(fixedNow), WithIndex(true))

	if _, err := store.SaveReport(sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, "artifacts", "index.jsonl"))
	if err != nil {
		t.Fatalf("index not written: %v", err)
	}
	line := strings.TrimSpace(string(b))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("index line is not valid JSON: %v", err)
	}
	if entry["strategy"] != "heap" {
		t.Fatalf("unexpected index entry: %v", entry)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"dump.json", "dump-json"},
		{"My File (1).JSON", "my-file-1-json"},
		{"---", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := slugify(c.in); got != c.want {
			t.Fatalf("slugify(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
