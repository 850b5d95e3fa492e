// Package comment provides the park note domain model, its in-memory store,
// and SQLite persistence for store snapshots.
package comment

import "time"

// DateLayout is the layout used for every date emitted in a projection.
const DateLayout = "2006-01-02"

// Comment represents a visitor's note about a park.
type Comment struct {
	ID         int64
	LocationID int64
	VisitorID  int64
	CreatedAt  time.Time
	Title      string
	Body       string
}

// View returns the full projection of the comment.
func (c *Comment) View() View {
	return View{
		Body:       c.Body,
		Date:       c.date(),
		ID:         c.ID,
		LocationID: c.LocationID,
		Title:      c.Title,
		VisitorID:  c.VisitorID,
	}
}

// LimitedView returns the projection used when the comment is nested under
// its park, where the park id is already known.
func (c *Comment) LimitedView() Summary {
	return Summary{
		Date:  c.date(),
		ID:    c.ID,
		Title: c.Title,
	}
}

// VisitorView returns the projection used when listing a visitor's comments.
func (c *Comment) VisitorView() VisitorSummary {
	return VisitorSummary{
		Date:       c.date(),
		ID:         c.ID,
		LocationID: c.LocationID,
		Title:      c.Title,
	}
}

func (c *Comment) date() string {
	return c.CreatedAt.Format(DateLayout)
}

// clone returns a copy that shares no state with c.
func (c *Comment) clone() *Comment {
	cp := *c
	return &cp
}
