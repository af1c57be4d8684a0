package model

import "github.com/google/uuid"

// Todo is a single list entry.
// ID is minted once at creation and is the identity used by the views;
// the position in the list is display order only.
type Todo struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
}

// New returns a fresh, not yet completed Todo with its own ID.
// Text is stored as given; trimming and validation belong to the caller.
func New(text string) Todo {
	return Todo{ID: uuid.New(), Text: text}
}
