package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Labels key.Binding
	Edit   key.Binding
	Delete key.Binding
	Quit   key.Binding

	Submit    key.Binding
	Cancel    key.Binding
	Up        key.Binding
	Down      key.Binding
	NewLabel  key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
		Labels: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "labels")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Up:        key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓", "down")),
		NewLabel:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new label")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// rowHelp lists the bindings shown under the todo list.
func (k keyMap) rowHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Labels, k.Edit, k.Delete}
}
