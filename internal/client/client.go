// Package client provides an HTTP client for the park notes REST API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/evcraddock/park-notes/internal/comment"
	"github.com/evcraddock/park-notes/internal/web"
)

// Client is an HTTP client for the notes API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateNote adds a note and returns its id.
func (c *Client) CreateNote(req web.CreateRequest) (int64, error) {
	var resp web.IDResponse
	if err := c.send("POST", "/api/notes", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// GetNote returns a note's full view. A missing note yields an empty view.
func (c *Client) GetNote(id int64) (comment.View, error) {
	var v comment.View
	if err := c.get(fmt.Sprintf("/api/notes/%d", id), &v); err != nil {
		return comment.View{}, err
	}
	return v, nil
}

// UpdateNote changes a note's visitor, title, and body.
func (c *Client) UpdateNote(id int64, req web.UpdateRequest) error {
	return c.send("PUT", fmt.Sprintf("/api/notes/%d", id), req, nil)
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(id int64) error {
	return c.send("DELETE", fmt.Sprintf("/api/notes/%d", id), nil, nil)
}

// ListAll returns every note grouped by park.
func (c *Client) ListAll() ([]comment.Group, error) {
	var groups []comment.Group
	if err := c.get("/api/notes", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// ListForPark returns the notes on one park.
func (c *Client) ListForPark(parkID int64) ([]comment.Group, error) {
	var groups []comment.Group
	if err := c.get(fmt.Sprintf("/api/parks/%d/notes", parkID), &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// ListForVisitor returns the notes written by one visitor.
func (c *Client) ListForVisitor(visitorID int64) ([]comment.VisitorSummary, error) {
	var notes []comment.VisitorSummary
	if err := c.get(fmt.Sprintf("/api/visitors/%d/notes", visitorID), &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Search returns the notes matching keyword.
func (c *Client) Search(keyword string) ([]comment.Summary, error) {
	var notes []comment.Summary
	if err := c.get("/api/search?q="+url.QueryEscape(keyword), &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// IsAssociated reports whether a note belongs to a park.
func (c *Client) IsAssociated(noteID, parkID int64) (bool, error) {
	var resp web.AssociationResponse
	if err := c.get(fmt.Sprintf("/api/parks/%d/notes/%d", parkID, noteID), &resp); err != nil {
		return false, err
	}
	return resp.Associated, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	return c.send("GET", path, nil, result)
}

// send performs a request with an optional JSON body and decodes the response.
func (c *Client) send(method, path string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, result)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
