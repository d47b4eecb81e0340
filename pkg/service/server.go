// Package service exposes the HTTP trigger API: start a check run, fetch the
// last report, poll the last verdict.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/fabricops/fabcheck/pkg/check"
	"github.com/fabricops/fabcheck/pkg/util"
)

// Runner starts one check run. *check.Checker satisfies this.
type Runner interface {
	Run(ctx context.Context) (*check.Report, error)
}

// Notifier receives the one-line run summary. *notify.Telegram satisfies
// this.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Server serializes check runs triggered over HTTP and retains the latest
// outcome.
type Server struct {
	runner   Runner
	store    *RedisStore // nil when publishing is disabled
	notifier Notifier    // nil when notifications are disabled

	mu       sync.Mutex
	running  bool
	last     *check.Report
	lastText string
}

// NewServer creates a trigger server around the given runner.
func NewServer(runner Runner) *Server {
	return &Server{runner: runner}
}

// SetStore enables publishing run outcomes to Redis.
func (s *Server) SetStore(store *RedisStore) {
	s.store = store
}

// SetNotifier enables chat notifications on completed runs.
func (s *Server) SetNotifier(n Notifier) {
	s.notifier = n
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/build", s.handleBuild).Methods(http.MethodPost, http.MethodGet)
	r.HandleFunc("/report", s.handleReport).Methods(http.MethodGet)
	r.HandleFunc("/verdict", s.handleVerdict).Methods(http.MethodGet)
	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "fabcheck"})
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		writeJSON(w, http.StatusConflict, map[string]string{"response": "Check already in progress"})
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.runCheck()

	writeJSON(w, http.StatusAccepted, map[string]string{"response": "Check Started", "url": "/report"})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	text := s.lastText
	s.mu.Unlock()

	if text == "" {
		http.Error(w, "no completed run yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

func (s *Server) handleVerdict(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	if last == nil {
		http.Error(w, "no completed run yet", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"passed":      last.Passed,
		"devices":     len(last.Devices),
		"unreachable": last.Unreachable(),
		"mismatched":  last.Mismatched(),
		"timestamp":   last.Timestamp.Format(time.RFC3339),
	})
}

// runCheck executes one run in the background and retains its outcome.
func (s *Server) runCheck() {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx := context.Background()
	report, err := s.runner.Run(ctx)
	if err != nil {
		util.Errorf("Triggered run failed: %v", err)
		return
	}

	var buf bytes.Buffer
	check.Render(&buf, report)

	s.mu.Lock()
	s.last = report
	s.lastText = buf.String()
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Publish(ctx, report, buf.String()); err != nil {
			util.Warnf("Publishing run outcome: %v", err)
		}
	}
	if s.notifier != nil {
		if err := s.notifier.Send(ctx, check.Summary(report)); err != nil {
			util.Warnf("Sending run notification: %v", err)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		util.Warnf("Encoding response: %v", err)
	}
}
