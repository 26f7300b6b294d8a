package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatterLayout(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetFormatter(PlainFormatter{})
	l.SetOutput(buf)
	SetRoot(l)
	defer SetRoot(nil)

	Named("bot").WithField("generation", 3).Info("responder armed")

	line := strings.TrimSpace(buf.String())
	for _, want := range []string{"[INFO]", "[bot]", "responder armed", "generation=3"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestFormatFieldsSortedAndComponentHidden(t *testing.T) {
	t.Parallel()

	got := formatFields(logrus.Fields{"z": 1, "a": "x", "component": "tui"})
	if got != "a=x z=1" {
		t.Fatalf("formatFields=%q want %q", got, "a=x z=1")
	}
	if formatFields(logrus.Fields{"component": "tui"}) != "" {
		t.Fatal("component-only fields should render empty")
	}
}

func TestShortenFilePath(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/home/x/banter-cli/internal/chat/store.go": "internal/chat/store.go",
		"/home/x/banter-cli/cmd/banter/main.go":     "cmd/banter/main.go",
		"/somewhere/else/file.go":                   "file.go",
	}
	for in, want := range cases {
		if got := shortenFilePath(in); got != want {
			t.Fatalf("shortenFilePath(%q)=%q want=%q", in, got, want)
		}
	}
}

func TestSetupFileCreatesParentDir(t *testing.T) {
	l := logrus.New()
	SetRoot(l)
	defer SetRoot(nil)

	path := filepath.Join(t.TempDir(), "deep", "nested", "banter.log")
	closer, resolved, err := SetupFile(path)
	if err != nil {
		t.Fatalf("SetupFile: %v", err)
	}
	defer closer.Close()
	if resolved != path {
		t.Fatalf("resolved=%q want=%q", resolved, path)
	}

	Infof("hello %s", "file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("log file %q missing message", string(data))
	}
}
