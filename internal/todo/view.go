package todo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/todoview/internal/model"
)

// DefaultSeed is the list a fresh widget starts with.
var DefaultSeed = []string{"Buy groceries", "Walk the dog", "Read a book"}

// View is the todo-list widget state: the list, the input buffer, the
// active filter and a single-level undo slot for deletes.
type View struct {
	todos  []model.Todo
	input  string
	filter string // normalised pattern, "" shows everything

	undo *removed
	log  *log.Logger
}

type removed struct {
	todo     model.Todo
	position int
}

// Option configures a View.
type Option func(*View)

// WithLogger routes transition logs to l.
func WithLogger(l *log.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.log = l
		}
	}
}

// NewView returns a View holding a copy of seed. Seed entries without an ID
// get one; their text is kept as is.
func NewView(seed []model.Todo, opts ...Option) *View {
	v := &View{
		todos: make([]model.Todo, 0, len(seed)),
		log:   log.New(io.Discard),
	}
	for _, t := range seed {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		v.todos = append(v.todos, t)
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// DefaultTodos returns fresh todos for DefaultSeed, none completed.
func DefaultTodos() []model.Todo {
	todos := make([]model.Todo, 0, len(DefaultSeed))
	for _, text := range DefaultSeed {
		todos = append(todos, model.New(text))
	}
	return todos
}

// NewDefaultView returns a View seeded with DefaultTodos.
func NewDefaultView(opts ...Option) *View {
	return NewView(DefaultTodos(), opts...)
}

// Len reports the number of todos, ignoring the filter.
func (v *View) Len() int { return len(v.todos) }

// Todos returns a copy of the list in display order.
func (v *View) Todos() []model.Todo {
	out := make([]model.Todo, len(v.todos))
	copy(out, v.todos)
	return out
}

// Input returns the pending input buffer.
func (v *View) Input() string { return v.input }

// SetInput replaces the input buffer verbatim. It is called on every
// keystroke, so it does not trim.
func (v *View) SetInput(raw string) { v.input = raw }

// SubmitNewTodo trims raw and, when something is left, appends it as a new
// uncompleted todo. Whitespace-only input is declined silently. The input
// buffer is cleared either way.
func (v *View) SubmitNewTodo(raw string) (model.Todo, bool) {
	v.input = ""
	text := strings.TrimSpace(raw)
	if text == "" {
		return model.Todo{}, false
	}
	t := model.New(text)
	v.todos = append(v.todos, t)
	v.log.Debug("todo added", "id", t.ID, "position", len(v.todos)-1)
	return t, true
}

// Submit submits the current input buffer.
func (v *View) Submit() (model.Todo, bool) {
	return v.SubmitNewTodo(v.input)
}

// ToggleCompleted flips the completed flag of the todo at index.
func (v *View) ToggleCompleted(index int) error {
	if err := v.checkIndex(index); err != nil {
		return fmt.Errorf("toggle: %w", err)
	}
	v.toggleAt(index)
	return nil
}

// DeleteTodo removes the todo at index; later todos shift down by one.
func (v *View) DeleteTodo(index int) error {
	if err := v.checkIndex(index); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	v.deleteAt(index)
	return nil
}

// Toggle flips the completed flag of the todo with the given ID.
func (v *View) Toggle(id uuid.UUID) error {
	i := v.indexOf(id)
	if i < 0 {
		return fmt.Errorf("toggle %s: %w", id, ErrNotFound)
	}
	v.toggleAt(i)
	return nil
}

// Delete removes the todo with the given ID.
func (v *View) Delete(id uuid.UUID) error {
	i := v.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	v.deleteAt(i)
	return nil
}

// CanUndo reports whether a deleted todo can be restored.
func (v *View) CanUndo() bool { return v.undo != nil }

// Undo restores the most recently deleted todo at its former position,
// clamped to the current length. It reports whether anything was restored.
func (v *View) Undo() bool {
	if v.undo == nil {
		return false
	}
	r := *v.undo
	v.undo = nil

	pos := min(max(r.position, 0), len(v.todos))
	v.todos = append(v.todos, model.Todo{})
	copy(v.todos[pos+1:], v.todos[pos:])
	v.todos[pos] = r.todo
	v.log.Debug("todo restored", "id", r.todo.ID, "position", pos)
	return true
}

func (v *View) toggleAt(i int) {
	v.todos[i].Completed = !v.todos[i].Completed
	v.log.Debug("todo toggled", "id", v.todos[i].ID, "position", i, "completed", v.todos[i].Completed)
}

func (v *View) deleteAt(i int) {
	t := v.todos[i]
	v.todos = append(v.todos[:i], v.todos[i+1:]...)
	v.undo = &removed{todo: t, position: i}
	v.log.Debug("todo deleted", "id", t.ID, "position", i)
}

func (v *View) checkIndex(i int) error {
	if i < 0 || i >= len(v.todos) {
		return fmt.Errorf("%w: have %d, got %d", ErrOutOfRange, len(v.todos), i)
	}
	return nil
}

func (v *View) indexOf(id uuid.UUID) int {
	for i, t := range v.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
