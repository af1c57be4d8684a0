package todo

import "github.com/google/uuid"

// Row is one render-ready todo. Position is the index in the full list,
// which differs from the row's place in Snapshot.Rows when a filter is set.
type Row struct {
	ID        uuid.UUID `json:"id"`
	Position  int       `json:"position"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
}

// Snapshot is the immutable view-model taken after a transition.
// Counts always describe the whole list, filtered or not.
type Snapshot struct {
	Rows    []Row  `json:"todos"`
	Input   string `json:"input"`
	Filter  string `json:"filter,omitempty"`
	Done    int    `json:"done"`
	Pending int    `json:"pending"`
	Total   int    `json:"total"`
	CanUndo bool   `json:"can_undo"`
}

// Snapshot computes the current view-model.
func (v *View) Snapshot() Snapshot {
	s := Snapshot{
		Rows:    make([]Row, 0, len(v.todos)),
		Input:   v.input,
		Filter:  v.filter,
		Total:   len(v.todos),
		CanUndo: v.undo != nil,
	}
	for i, t := range v.todos {
		if t.Completed {
			s.Done++
		} else {
			s.Pending++
		}
		if !v.Matches(t.Text) {
			continue
		}
		s.Rows = append(s.Rows, Row{
			ID:        t.ID,
			Position:  i,
			Text:      t.Text,
			Completed: t.Completed,
		})
	}
	return s
}

// Row returns the i-th visible row.
func (s Snapshot) Row(i int) (Row, bool) {
	if i < 0 || i >= len(s.Rows) {
		return Row{}, false
	}
	return s.Rows[i], true
}
