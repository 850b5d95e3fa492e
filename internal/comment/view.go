package comment

import "encoding/json"

// View is the full projection of a comment. The zero View is the
// "not found" projection and encodes as {}.
type View struct {
	Body       string `json:"body"`
	Date       string `json:"date"`
	ID         int64  `json:"nid,string"`
	LocationID int64  `json:"pid,string"`
	Title      string `json:"title"`
	VisitorID  int64  `json:"vid,string"`
}

// IsEmpty reports whether v is the "not found" projection.
func (v View) IsEmpty() bool {
	return v == View{}
}

// MarshalJSON encodes an empty view as {} and any other view with its
// fields in declaration order.
func (v View) MarshalJSON() ([]byte, error) {
	if v.IsEmpty() {
		return []byte("{}"), nil
	}
	type plain View
	return json.Marshal(plain(v))
}

// Summary is the reduced projection of a comment: id, date, and title.
// It is used for comments nested in a Group and for search results.
type Summary struct {
	Date  string `json:"date"`
	ID    int64  `json:"nid,string"`
	Title string `json:"title"`
}

// VisitorSummary is the projection used when listing a visitor's comments.
type VisitorSummary struct {
	Date       string `json:"date"`
	ID         int64  `json:"nid,string"`
	LocationID int64  `json:"pid,string"`
	Title      string `json:"title"`
}

// Group holds the comments left on one park.
type Group struct {
	Notes      []Summary `json:"notes"`
	LocationID int64     `json:"pid,string"`
}

// MarshalJSON keeps an empty group's notes as [] rather than null.
func (g Group) MarshalJSON() ([]byte, error) {
	type plain Group
	if g.Notes == nil {
		g.Notes = []Summary{}
	}
	return json.Marshal(plain(g))
}
