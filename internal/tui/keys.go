package tui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Up, Down   key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Undo       key.Binding
	Filter     key.Binding
	Add        key.Binding
	Help, Quit key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Undo, k.Add, k.Filter, k.Help, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Delete, k.Undo},
		{k.Add, k.Filter},
		{k.Help, k.Quit},
	}
}

type inputKeyMap struct {
	Submit, Leave key.Binding
}

func (k inputKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Submit, k.Leave} }
func (k inputKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var (
	forceQuit = key.NewBinding(key.WithKeys("ctrl+c"))

	listKeys = listKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Add:    key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("a", "add")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}

	inputKeys = inputKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:  key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "list")),
	}

	filterKeys = inputKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	}
)
