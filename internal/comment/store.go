package comment

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// NotFound is returned by Update when no comment has the requested id.
const NotFound int64 = -1

// entry is a live comment plus its insertion sequence number.
type entry struct {
	comment *Comment
	seq     uint64
}

// Store is an in-memory registry of park comments.
//
// Store is not safe for concurrent use. Lookups that miss report it through
// their result (an empty View, NotFound, an empty slice) rather than an error.
type Store struct {
	entries    map[int64]*entry
	byLocation map[int64][]int64 // park id -> comment ids in insertion order
	nextID     int64
	nextSeq    uint64
}

// NewStore creates a store whose initial live set is seed. Seeded ids are
// kept as given; a later duplicate replaces an earlier one. Ids allocated by
// Create start above the largest seeded id.
func NewStore(seed []*Comment) *Store {
	s := &Store{
		entries:    make(map[int64]*entry, len(seed)),
		byLocation: make(map[int64][]int64),
		nextID:     1,
	}
	for _, c := range seed {
		if c == nil {
			continue
		}
		s.remove(c.ID)
		s.insert(c.clone())
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return s
}

// Len returns the number of live comments.
func (s *Store) Len() int {
	return len(s.entries)
}

// Create adds a comment and returns its newly allocated id.
// Ids are never reused, even after the comment is deleted.
func (s *Store) Create(locationID, visitorID int64, createdAt time.Time, title, body string) int64 {
	id := s.nextID
	s.nextID++

	s.insert(&Comment{
		ID:         id,
		LocationID: locationID,
		VisitorID:  visitorID,
		CreatedAt:  createdAt,
		Title:      title,
		Body:       body,
	})
	return id
}

// Get returns the full view of a comment, or an empty View if it does not exist.
func (s *Store) Get(id int64) View {
	e, ok := s.entries[id]
	if !ok {
		return View{}
	}
	return e.comment.View()
}

// Update changes the visitor, title, and body of a comment and returns its id.
// It returns NotFound and changes nothing if the comment does not exist.
func (s *Store) Update(id, visitorID int64, title, body string) int64 {
	e, ok := s.entries[id]
	if !ok {
		return NotFound
	}
	e.comment.VisitorID = visitorID
	e.comment.Title = title
	e.comment.Body = body
	return id
}

// Delete removes a comment. Deleting an unknown id does nothing.
func (s *Store) Delete(id int64) {
	s.remove(id)
}

// ListForLocation returns the comments on one park as a single group.
// The group is returned even when the park has no comments.
func (s *Store) ListForLocation(locationID int64) []Group {
	return []Group{s.group(locationID)}
}

// ListAll returns one group per park that has comments, ordered by park id.
func (s *Store) ListAll() []Group {
	groups := make([]Group, 0, len(s.byLocation))
	for _, loc := range slices.Sorted(maps.Keys(s.byLocation)) {
		groups = append(groups, s.group(loc))
	}
	return groups
}

// ListForVisitor returns the comments written by a visitor, ordered by id.
func (s *Store) ListForVisitor(visitorID int64) []VisitorSummary {
	out := []VisitorSummary{}
	for _, c := range s.sortedByID() {
		if c.VisitorID == visitorID {
			out = append(out, c.VisitorView())
		}
	}
	return out
}

// Search returns the comments whose title or body contains keyword,
// ignoring case, ordered by id. An empty keyword matches every comment.
func (s *Store) Search(keyword string) []Summary {
	fold := cases.Fold()
	needle := fold.String(keyword)

	out := []Summary{}
	for _, c := range s.sortedByID() {
		if strings.Contains(fold.String(c.Title), needle) ||
			strings.Contains(fold.String(c.Body), needle) {
			out = append(out, c.LimitedView())
		}
	}
	return out
}

// IsAssociated reports whether the comment exists and belongs to the park.
func (s *Store) IsAssociated(commentID, locationID int64) bool {
	e, ok := s.entries[commentID]
	return ok && e.comment.LocationID == locationID
}

// Snapshot returns copies of all live comments in insertion order.
func (s *Store) Snapshot() []*Comment {
	live := slices.SortedFunc(maps.Values(s.entries), func(a, b *entry) int {
		return cmp.Compare(a.seq, b.seq)
	})
	out := make([]*Comment, 0, len(live))
	for _, e := range live {
		out = append(out, e.comment.clone())
	}
	return out
}

func (s *Store) insert(c *Comment) {
	s.entries[c.ID] = &entry{comment: c, seq: s.nextSeq}
	s.nextSeq++
	s.byLocation[c.LocationID] = append(s.byLocation[c.LocationID], c.ID)
}

func (s *Store) remove(id int64) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	delete(s.entries, id)

	loc := e.comment.LocationID
	ids := slices.DeleteFunc(s.byLocation[loc], func(v int64) bool { return v == id })
	if len(ids) == 0 {
		delete(s.byLocation, loc)
		return
	}
	s.byLocation[loc] = ids
}

func (s *Store) group(locationID int64) Group {
	ids := s.byLocation[locationID]
	notes := make([]Summary, 0, len(ids))
	for _, id := range ids {
		notes = append(notes, s.entries[id].comment.LimitedView())
	}
	return Group{Notes: notes, LocationID: locationID}
}

func (s *Store) sortedByID() []*Comment {
	out := make([]*Comment, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.comment)
	}
	slices.SortFunc(out, func(a, b *Comment) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
