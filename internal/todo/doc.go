// Package todo holds the state of the todo-list widget.
//
// A View owns an ordered list of model.Todo values and the pending input
// buffer. Every transition is synchronous; renderers never read the list
// directly but consume the Snapshot taken after each transition.
//
// A View is not safe for concurrent use. It is meant to be owned by a single
// event loop (the Bubble Tea model, or the CLI script runner).
package todo
