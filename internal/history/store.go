package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store persists composer input lines as JSONL so Up-arrow recall survives
// restarts. Only submitted input goes here; the conversation itself is never
// written anywhere.
type Store struct {
	Path string
}

// MaxRecall caps how many lines LoadTexts returns; older lines stay on disk
// but are not loaded into the composer.
const MaxRecall = 200

type record struct {
	Text string    `json:"text"`
	TS   time.Time `json:"ts"`
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".banter", "history.jsonl"), nil
}

func NewDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return &Store{Path: path}, nil
}

// Append writes one input line. Blank lines are dropped silently.
func (s *Store) Append(text string) error {
	if s == nil {
		return errors.New("history store is nil")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if strings.TrimSpace(s.Path) == "" {
		return errors.New("history store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(record{Text: text, TS: time.Now()})
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// LoadTexts returns up to MaxRecall most recent input lines, oldest first.
// Garbage lines are skipped; a missing file yields no history and no error.
func (s *Store) LoadTexts() ([]string, error) {
	if s == nil || strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("history store path is empty")
	}
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		if strings.TrimSpace(rec.Text) == "" {
			continue
		}
		out = append(out, rec.Text)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out) > MaxRecall {
		out = out[len(out)-MaxRecall:]
	}
	return out, nil
}
