package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/evcraddock/park-notes/internal/comment"
)

var apiTestDate = time.Date(2019, 4, 7, 9, 0, 0, 0, time.UTC)

// recordingSaver remembers the last snapshot it was given.
type recordingSaver struct {
	calls int
	last  []*comment.Comment
	err   error
}

func (r *recordingSaver) Save(comments []*comment.Comment) error {
	r.calls++
	r.last = comments
	return r.err
}

// testAPIServer creates a server seeded with notes 250-254 on parks 200-204.
func testAPIServer(t *testing.T) (*Server, *recordingSaver) {
	t.Helper()
	var seed []*comment.Comment
	for i := int64(0); i < 5; i++ {
		seed = append(seed, &comment.Comment{
			ID:         250 + i,
			LocationID: 200 + i,
			VisitorID:  300 + i,
			CreatedAt:  apiTestDate,
			Title:      fmt.Sprintf("Like %d", i),
			Body:       "I Like very much",
		})
	}

	saver := &recordingSaver{}
	srv := NewServer(comment.NewStore(seed), saver)
	srv.now = func() time.Time { return apiTestDate }
	return srv, saver
}

func apiRequest(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	r := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func TestAPIHealth(t *testing.T) {
	srv, _ := testAPIServer(t)

	w := apiRequest(t, srv, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"notes":5`) {
		t.Errorf("body = %s, want note count", w.Body.String())
	}
}

func TestAPICreateAndGet(t *testing.T) {
	srv, saver := testAPIServer(t)

	req := CreateRequest{LocationID: 250, VisitorID: 350, Title: "Green Forest", Body: "This forest was soo green"}
	w := apiRequest(t, srv, "POST", "/api/notes", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"nid":"255"}` {
		t.Errorf("create body = %s", got)
	}
	if saver.calls != 1 || len(saver.last) != 6 {
		t.Errorf("saver calls = %d, snapshot size = %d; want 1 and 6", saver.calls, len(saver.last))
	}

	w = apiRequest(t, srv, "GET", "/api/notes/255", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	want := `{"body":"This forest was soo green","date":"2019-04-07","nid":"255","pid":"250","title":"Green Forest","vid":"350"}`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("get body = %s, want %s", got, want)
	}
}

func TestAPICreateWithDate(t *testing.T) {
	srv, _ := testAPIServer(t)

	req := CreateRequest{LocationID: 102, VisitorID: 100, Date: "2020-01-02", Title: "No Campground"}
	w := apiRequest(t, srv, "POST", "/api/notes", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	w = apiRequest(t, srv, "GET", "/api/notes/255", nil)
	if !strings.Contains(w.Body.String(), `"date":"2020-01-02"`) {
		t.Errorf("body = %s, want supplied date", w.Body.String())
	}
}

func TestAPICreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `not json`},
		{"missing title", `{"pid":"250","vid":"350","title":"  "}`},
		{"bad date", `{"pid":"250","vid":"350","title":"t","date":"07/04/2019"}`},
		{"numeric id", `{"pid":250,"vid":"350","title":"t"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, saver := testAPIServer(t)
			r := httptest.NewRequest("POST", "/api/notes", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, r)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if saver.calls != 0 {
				t.Errorf("saver called %d times, want 0", saver.calls)
			}
		})
	}
}

func TestAPIGetMissing(t *testing.T) {
	srv, _ := testAPIServer(t)

	w := apiRequest(t, srv, "GET", "/api/notes/200", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "{}" {
		t.Errorf("body = %s, want {}", got)
	}
}

func TestAPIInvalidNoteID(t *testing.T) {
	srv, _ := testAPIServer(t)

	w := apiRequest(t, srv, "GET", "/api/notes/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPIUpdate(t *testing.T) {
	srv, saver := testAPIServer(t)

	req := UpdateRequest{VisitorID: 402, Title: "Mosquitos galore", Body: "The mosquitos kill here"}
	w := apiRequest(t, srv, "PUT", "/api/notes/250", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if saver.calls != 1 {
		t.Errorf("saver calls = %d, want 1", saver.calls)
	}

	w = apiRequest(t, srv, "GET", "/api/notes/250", nil)
	want := `{"body":"The mosquitos kill here","date":"2019-04-07","nid":"250","pid":"200","title":"Mosquitos galore","vid":"402"}`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestAPIUpdateNotFound(t *testing.T) {
	srv, saver := testAPIServer(t)

	req := UpdateRequest{VisitorID: 402, Title: "Mosquitos galore"}
	w := apiRequest(t, srv, "PUT", "/api/notes/1000", req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if saver.calls != 0 {
		t.Errorf("saver calls = %d, want 0", saver.calls)
	}
}

func TestAPIDelete(t *testing.T) {
	srv, _ := testAPIServer(t)

	w := apiRequest(t, srv, "DELETE", "/api/notes/250", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	w = apiRequest(t, srv, "GET", "/api/notes/250", nil)
	if got := strings.TrimSpace(w.Body.String()); got != "{}" {
		t.Errorf("after delete: body = %s, want {}", got)
	}

	// Unknown ids delete silently.
	w = apiRequest(t, srv, "DELETE", "/api/notes/800", nil)
	if w.Code != http.StatusOK {
		t.Errorf("unknown id: status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAPIListAll(t *testing.T) {
	srv, _ := testAPIServer(t)

	w := apiRequest(t, srv, "GET", "/api/notes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var groups []comment.Group
	if err := json.NewDecoder(w.Body).Decode(&groups); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(groups) != 5 {
		t.Fatalf("got %d groups, want 5", len(groups))
	}
	for i, g := range groups {
		if g.LocationID != int64(200+i) {
			t.Errorf("group %d park = %d, want %d", i, g.LocationID, 200+i)
		}
	}
}

func TestAPIListForPark(t *testing.T) {
	srv, _ := testAPIServer(t)

	w := apiRequest(t, srv, "GET", "/api/parks/250/notes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `[{"notes":[],"pid":"250"}]` {
		t.Errorf("body = %s", got)
	}
}

func TestAPIParkRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		code   int
		body   string
	}{
		{"associated", "GET", "/api/parks/200/notes/250", http.StatusOK, `{"associated":true}`},
		{"other park", "GET", "/api/parks/343/notes/250", http.StatusOK, `{"associated":false}`},
		{"unknown note", "GET", "/api/parks/100/notes/506", http.StatusOK, `{"associated":false}`},
		{"bad park id", "GET", "/api/parks/x/notes", http.StatusBadRequest, ""},
		{"bad note id", "GET", "/api/parks/200/notes/x", http.StatusBadRequest, ""},
		{"unknown subresource", "GET", "/api/parks/200/visits", http.StatusNotFound, ""},
		{"wrong method", "POST", "/api/parks/200/notes", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := testAPIServer(t)
			w := apiRequest(t, srv, tt.method, tt.path, nil)
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
			if tt.body != "" {
				if got := strings.TrimSpace(w.Body.String()); got != tt.body {
					t.Errorf("body = %s, want %s", got, tt.body)
				}
			}
		})
	}
}

func TestAPIListForVisitor(t *testing.T) {
	srv, _ := testAPIServer(t)

	w := apiRequest(t, srv, "GET", "/api/visitors/700/notes", nil)
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("unknown visitor body = %s, want []", got)
	}

	w = apiRequest(t, srv, "GET", "/api/visitors/300/notes", nil)
	want := `[{"date":"2019-04-07","nid":"250","pid":"200","title":"Like 0"}]`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}

	w = apiRequest(t, srv, "GET", "/api/visitors/300", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing /notes: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAPISearch(t *testing.T) {
	srv, _ := testAPIServer(t)

	w := apiRequest(t, srv, "GET", "/api/search?q=like+0", nil)
	want := `[{"date":"2019-04-07","nid":"250","title":"Like 0"}]`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}

	w = apiRequest(t, srv, "GET", "/api/search", nil)
	var all []comment.Summary
	if err := json.NewDecoder(w.Body).Decode(&all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("empty keyword: got %d notes, want 5", len(all))
	}
}

func TestAPISaveErrorDoesNotFailRequest(t *testing.T) {
	srv, saver := testAPIServer(t)
	saver.err = errors.New("disk full")

	w := apiRequest(t, srv, "DELETE", "/api/notes/250", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAPINilSaver(t *testing.T) {
	srv := NewServer(comment.NewStore(nil), nil)

	w := apiRequest(t, srv, "POST", "/api/notes", CreateRequest{LocationID: 1, VisitorID: 1, Title: "t"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
}
