package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStoreAppendAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chat", "transcript.jsonl")
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &Store{Path: path, Now: func() time.Time { return ts }}

	if got, err := s.Load(); err != nil || len(got) != 0 {
		t.Fatalf("Load on missing file: got=%v err=%v", got, err)
	}

	if e, err := s.Append(Entry{Text: "   "}); err != nil || e.ID != "" {
		t.Fatalf("Append whitespace: entry=%+v err=%v", e, err)
	}
	first, err := s.Append(Entry{Sender: "ann", Text: "hello"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if first.ID == "" || first.Role != "user" || !first.TS.Equal(ts) {
		t.Fatalf("Append did not fill defaults: %+v", first)
	}
	if _, err := s.Append(Entry{ID: "fixed", Role: "assistant", Attachment: "plot.png"}); err != nil {
		t.Fatalf("Append attachment: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load len=%d want=2: %#v", len(got), got)
	}
	if got[0].ID != first.ID || got[0].Text != "hello" || got[0].Sender != "ann" {
		t.Fatalf("first entry = %+v", got[0])
	}
	if got[1].ID != "fixed" || got[1].Attachment != "plot.png" {
		t.Fatalf("second entry = %+v", got[1])
	}
}

func TestStoreLoadSkipsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join([]string{
		`{"id":"1","role":"user","text":"one","ts":"2025-01-01T00:00:00Z"}`,
		`{not json}`,
		`{"role":"assistant","text":"","ts":"2025-01-01T00:00:00Z"}`,
		`{"role":"assistant","text":"two","ts":"2025-01-01T00:00:00Z"}`,
		"",
	}, "\n")), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0].Text != "one" || got[1].Text != "two" {
		t.Fatalf("Load = %#v", got)
	}
	if got[1].ID == "" {
		t.Fatalf("entry without id should be assigned one")
	}
}

func TestStoreErrors(t *testing.T) {
	t.Parallel()

	var s *Store
	if _, err := s.Append(Entry{Text: "hi"}); err == nil {
		t.Fatalf("expected error for nil store")
	}
	s = &Store{}
	if _, err := s.Append(Entry{Text: "hi"}); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := s.Load(); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
