// Package web provides the JSON HTTP API for the park notes store.
package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/evcraddock/park-notes/internal/comment"
	"github.com/evcraddock/park-notes/internal/logging"
)

// Saver persists a snapshot of the store after a mutation.
type Saver interface {
	Save(comments []*comment.Comment) error
}

// Server is the notes API HTTP server.
//
// comment.Store is not safe for concurrent use, so every handler takes mu.
type Server struct {
	mu    sync.Mutex
	store *comment.Store
	saver Saver
	now   func() time.Time
	mux   *http.ServeMux
}

// NewServer creates a server over store. saver may be nil, in which case
// mutations live only in memory.
func NewServer(store *comment.Store, saver Saver) *Server {
	s := &Server{
		store: store,
		saver: saver,
		now:   time.Now,
		mux:   http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/notes", s.handleAPINotes)
	s.mux.HandleFunc("/api/notes/", s.handleAPINotes)
	s.mux.HandleFunc("/api/parks/", s.handleAPIParks)
	s.mux.HandleFunc("/api/visitors/", s.handleAPIVisitors)
	s.mux.HandleFunc("/api/search", s.handleAPISearch)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting notes API", "addr", "http://localhost"+addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	n := s.store.Len()
	s.mu.Unlock()

	apiJSON(w, map[string]interface{}{"status": "ok", "notes": n}, http.StatusOK)
}

// save hands a snapshot to the saver. Callers must hold mu.
func (s *Server) save() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.store.Snapshot()); err != nil {
		slog.Error("saving notes snapshot", "err", err)
	}
}
