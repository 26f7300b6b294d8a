package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndLoadTexts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.jsonl")
	s := &Store{Path: path}

	if got, err := s.LoadTexts(); err != nil || len(got) != 0 {
		t.Fatalf("LoadTexts on missing file: got=%v err=%v", got, err)
	}

	if err := s.Append("   "); err != nil {
		t.Fatalf("Append whitespace: %v", err)
	}
	if err := s.Append("hello there"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Append("second line"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := s.LoadTexts()
	if err != nil {
		t.Fatalf("LoadTexts: %v", err)
	}
	want := []string{"hello there", "second line"}
	if len(got) != len(want) {
		t.Fatalf("LoadTexts=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LoadTexts[%d]=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestLoadTextsSkipsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.jsonl")
	body := strings.Join([]string{
		`{"text":"one","ts":"2026-01-01T00:00:00Z"}`,
		`{not json}`,
		`{"text":"  ","ts":"2026-01-01T00:00:00Z"}`,
		`{"text":"two","ts":"2026-01-01T00:00:00Z"}`,
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := (&Store{Path: path}).LoadTexts()
	if err != nil {
		t.Fatalf("LoadTexts: %v", err)
	}
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("LoadTexts=%v want [one two]", got)
	}
}

func TestLoadTextsCapsAtMaxRecall(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.jsonl")
	s := &Store{Path: path}
	total := MaxRecall + 25
	for i := 0; i < total; i++ {
		if err := s.Append(fmt.Sprintf("line-%d", i)); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	got, err := s.LoadTexts()
	if err != nil {
		t.Fatalf("LoadTexts: %v", err)
	}
	if len(got) != MaxRecall {
		t.Fatalf("len=%d want %d", len(got), MaxRecall)
	}
	if got[0] != fmt.Sprintf("line-%d", total-MaxRecall) {
		t.Fatalf("oldest kept=%q", got[0])
	}
	if got[len(got)-1] != fmt.Sprintf("line-%d", total-1) {
		t.Fatalf("newest kept=%q", got[len(got)-1])
	}
}

func TestStoreErrors(t *testing.T) {
	t.Parallel()

	var nilStore *Store
	if err := nilStore.Append("x"); err == nil {
		t.Fatal("nil store Append should error")
	}
	empty := &Store{}
	if err := empty.Append("x"); err == nil {
		t.Fatal("empty path Append should error")
	}
	if _, err := empty.LoadTexts(); err == nil {
		t.Fatal("empty path LoadTexts should error")
	}
}
