// Package history keeps a JSON-lines log of completed check runs.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fabricops/fabcheck/pkg/check"
	"github.com/fabricops/fabcheck/pkg/util"
)

// Entry summarizes one completed run.
type Entry struct {
	Timestamp   time.Time `json:"timestamp"`
	Devices     int       `json:"devices"`
	Unreachable int       `json:"unreachable"`
	Mismatched  int       `json:"mismatched"`
	Passed      bool      `json:"passed"`
	DurationMS  int64     `json:"duration_ms"`
}

// FromReport builds a history entry from a run report.
func FromReport(r *check.Report) *Entry {
	return &Entry{
		Timestamp:   r.Timestamp,
		Devices:     len(r.Devices),
		Unreachable: r.Unreachable(),
		Mismatched:  r.Mismatched(),
		Passed:      r.Passed,
		DurationMS:  r.Duration.Milliseconds(),
	}
}

// Log appends run entries to a JSON-lines file.
type Log struct {
	path string
	mu   sync.Mutex
}

// NewLog creates a run log at path; the file is created on first append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// DefaultPath returns the default run-log location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fabcheck_history.jsonl"
	}
	return filepath.Join(home, ".fabcheck", "history.jsonl")
}

// Append writes one entry to the log.
func (l *Log) Append(e *Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening history log: %w", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(e)
}

// Recent returns up to limit entries, newest last. A zero or negative limit
// returns everything. Malformed lines are skipped with a warning.
func (l *Log) Recent(limit int) ([]*Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Entry{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []*Entry
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			util.Warnf("history: skipping malformed entry at line %d: %v", lineNum, err)
			continue
		}
		entries = append(entries, &e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}
