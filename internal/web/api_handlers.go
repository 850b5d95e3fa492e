package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/evcraddock/park-notes/internal/comment"
)

// CreateRequest is the body of POST /api/notes.
type CreateRequest struct {
	LocationID int64  `json:"pid,string"`
	VisitorID  int64  `json:"vid,string"`
	Date       string `json:"date,omitempty"` // yyyy-MM-dd, defaults to today
	Title      string `json:"title"`
	Body       string `json:"body"`
}

// UpdateRequest is the body of PUT /api/notes/{id}.
type UpdateRequest struct {
	VisitorID int64  `json:"vid,string"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

// IDResponse carries the id of a created or updated note.
type IDResponse struct {
	ID int64 `json:"nid,string"`
}

// AssociationResponse is the body of GET /api/parks/{pid}/notes/{id}.
type AssociationResponse struct {
	Associated bool `json:"associated"`
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleAPINotes routes /api/notes requests.
func (s *Server) handleAPINotes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/notes")
	path = strings.TrimPrefix(path, "/")

	// /api/notes: list or create
	if path == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiListAll(w)
		case http.MethodPost:
			s.apiCreate(w, r)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/notes/{id}: show, edit, or remove
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		apiError(w, "invalid note ID", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		s.apiGet(w, id)
	case http.MethodPut:
		s.apiUpdate(w, r, id)
	case http.MethodDelete:
		s.apiDelete(w, id)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleAPIParks routes /api/parks/{pid}/notes[/{id}] requests.
func (s *Server) handleAPIParks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/parks/"), "/"), "/")
	if len(parts) < 2 || len(parts) > 3 || parts[1] != "notes" {
		apiError(w, "not found", http.StatusNotFound)
		return
	}

	pid, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		apiError(w, "invalid park ID", http.StatusBadRequest)
		return
	}

	if len(parts) == 2 {
		s.mu.Lock()
		groups := s.store.ListForLocation(pid)
		s.mu.Unlock()
		apiJSON(w, groups, http.StatusOK)
		return
	}

	nid, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		apiError(w, "invalid note ID", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	ok := s.store.IsAssociated(nid, pid)
	s.mu.Unlock()
	apiJSON(w, AssociationResponse{Associated: ok}, http.StatusOK)
}

// handleAPIVisitors routes /api/visitors/{vid}/notes requests.
func (s *Server) handleAPIVisitors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/visitors/")
	if !strings.HasSuffix(path, "/notes") {
		apiError(w, "not found", http.StatusNotFound)
		return
	}
	vid, err := strconv.ParseInt(strings.TrimSuffix(path, "/notes"), 10, 64)
	if err != nil {
		apiError(w, "invalid visitor ID", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	notes := s.store.ListForVisitor(vid)
	s.mu.Unlock()
	apiJSON(w, notes, http.StatusOK)
}

// handleAPISearch handles GET /api/search?q=keyword.
func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	notes := s.store.Search(r.URL.Query().Get("q"))
	s.mu.Unlock()
	apiJSON(w, notes, http.StatusOK)
}

// apiListAll returns every note grouped by park.
func (s *Server) apiListAll(w http.ResponseWriter) {
	s.mu.Lock()
	groups := s.store.ListAll()
	s.mu.Unlock()
	apiJSON(w, groups, http.StatusOK)
}

// apiCreate adds a note.
func (s *Server) apiCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		apiError(w, "title is required", http.StatusBadRequest)
		return
	}

	createdAt := s.now()
	if req.Date != "" {
		d, err := time.Parse(comment.DateLayout, req.Date)
		if err != nil {
			apiError(w, "date must be yyyy-MM-dd", http.StatusBadRequest)
			return
		}
		createdAt = d
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.store.Create(req.LocationID, req.VisitorID, createdAt, req.Title, req.Body)
	s.save()

	apiJSON(w, IDResponse{ID: id}, http.StatusCreated)
}

// apiGet returns a note's full view; a missing note is an empty object.
func (s *Server) apiGet(w http.ResponseWriter, id int64) {
	s.mu.Lock()
	v := s.store.Get(id)
	s.mu.Unlock()
	apiJSON(w, v, http.StatusOK)
}

// apiUpdate changes a note's visitor, title, and body.
func (s *Server) apiUpdate(w http.ResponseWriter, r *http.Request, id int64) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Update(id, req.VisitorID, req.Title, req.Body) == comment.NotFound {
		apiError(w, "note not found", http.StatusNotFound)
		return
	}
	s.save()

	apiJSON(w, IDResponse{ID: id}, http.StatusOK)
}

// apiDelete removes a note. Removing an unknown note succeeds.
func (s *Server) apiDelete(w http.ResponseWriter, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Delete(id)
	s.save()

	apiJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
