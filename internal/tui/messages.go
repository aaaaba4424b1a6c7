package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
)

// Views never touch the store. They emit these messages and the App
// applies them. Toggles carry only the intent so they resolve against
// the store when they arrive, not against the row a view rendered.

type updateTodoMsg struct{ patch model.Patch }

type toggleCompletedMsg struct{ id int }

type toggleLabelMsg struct {
	todoID int
	label  model.Label
}

type deleteTodoMsg struct{ id int }

type openLabelsMsg struct{ id int }

type closeLabelsMsg struct{}

type createLabelMsg struct {
	todoID int
	name   string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
