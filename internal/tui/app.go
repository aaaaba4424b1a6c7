// Package tui is the interactive todo screen: a creation form on top of
// the todo list, with a label picker per row.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

// App is the root model. It owns the store; child views only emit
// messages, and the list is redrawn through a store subscription.
type App struct {
	store *store.Store
	log   *log.Logger
	keys  keyMap

	form   textinput.Model
	adding bool

	list   listView
	picker *labelPicker // non-nil while editing labels

	width, height int
	unsubscribe   func()
}

// New wires an App to s. A nil logger discards output.
func New(s *store.Store, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := defaultKeyMap()

	form := textinput.New()
	form.Prompt = "+ "
	form.Placeholder = "press a to add a todo"
	form.CharLimit = 200

	a := &App{
		store:  s,
		log:    logger,
		keys:   keys,
		form:   form,
		list:   newListView(keys),
		width:  80,
		height: 24,
	}
	a.unsubscribe = s.Subscribe(a.render)
	a.render(s.All())
	a.layout()
	return a
}

// render is the store subscription: every mutation redraws the rows and
// keeps an open label picker in sync.
func (a *App) render(todos []model.Todo) {
	a.list.SetTodos(todos)
	if a.picker == nil {
		return
	}
	for _, t := range todos {
		if t.ID == a.picker.todo.ID {
			a.picker.SetTodo(t)
			return
		}
	}
	// todo vanished under the picker
	a.picker = nil
}

// Close detaches the App from its store.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.list.Flush())
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		return nil

	case updateTodoMsg:
		a.store.Update(msg.patch)
		return nil

	case toggleCompletedMsg:
		a.store.ToggleCompleted(msg.id)
		return nil

	case toggleLabelMsg:
		a.store.ToggleLabel(msg.todoID, msg.label)
		return nil

	case deleteTodoMsg:
		a.store.Delete(msg.id)
		return nil

	case openLabelsMsg:
		t, ok := a.store.Find(msg.id)
		if !ok {
			return nil
		}
		p := newLabelPicker(t, a.store.Labels(), a.keys)
		a.picker = &p
		a.layout()
		return textinput.Blink

	case closeLabelsMsg:
		a.picker = nil
		a.layout()
		return nil

	case createLabelMsg:
		l, err := a.store.CreateLabel(msg.name, "")
		if err != nil {
			a.log.Debug("label not created", "name", msg.name, "err", err)
			if a.picker != nil {
				a.picker.SetError(labelError(err))
			}
			return nil
		}
		if a.picker != nil {
			a.picker.SetCatalog(a.store.Labels())
		}
		a.store.ToggleLabel(msg.todoID, l)
		return nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			a.log.Debug("force quit")
			return tea.Quit
		}
		return a.handleKey(msg)
	}

	return a.forward(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.adding {
		switch {
		case key.Matches(msg, a.keys.Submit):
			// empty text is ignored by the store; the form stays open
			if _, ok := a.store.Create(a.form.Value()); ok {
				a.form.SetValue("")
				a.list.list.Select(0)
			}
			return nil
		case key.Matches(msg, a.keys.Cancel):
			a.closeForm()
			return nil
		}
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return cmd
	}

	if a.picker != nil {
		var cmd tea.Cmd
		*a.picker, cmd = a.picker.Update(msg)
		return cmd
	}

	if !a.list.Busy() {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return tea.Quit
		case key.Matches(msg, a.keys.Add):
			a.adding = true
			a.form.Placeholder = "New todo..."
			a.layout()
			return a.form.Focus()
		}
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	a.layout()
	return cmd
}

// forward hands non-key messages (blink, filter results) to the focused
// child.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if a.adding {
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.picker != nil {
		var cmd tea.Cmd
		*a.picker, cmd = a.picker.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (a *App) closeForm() {
	a.adding = false
	a.form.SetValue("")
	a.form.Placeholder = "press a to add a todo"
	a.form.Blur()
	a.layout()
}

func (a *App) bar() lipgloss.Style {
	th := ui.Current()
	return lipgloss.NewStyle().Border(th.Border).BorderForeground(th.BorderColor).Padding(0, 1)
}

// layout sizes the list to whatever the form and overlays leave free.
func (a *App) layout() {
	used := lipgloss.Height(a.formView()) + 2 // outer panel border
	if o := a.overlay(); o != "" {
		used += lipgloss.Height(o)
	}
	h := a.height - used
	if h < 3 {
		h = 3
	}
	w := a.width - 4
	if w < 20 {
		w = 20
	}
	a.list.SetSize(w, h)
}

func (a *App) formView() string {
	title := "Add todo"
	if !a.adding {
		title = ui.Current().Muted.Render(title)
	}
	return a.bar().Render(title + "\n" + a.form.View())
}

func (a *App) overlay() string {
	switch {
	case a.picker != nil:
		return a.bar().Render(a.picker.View())
	case a.list.editing:
		return a.bar().Render(a.list.EditView())
	}
	return ""
}

func (a *App) View() string {
	parts := []string{a.formView(), a.list.View()}
	if o := a.overlay(); o != "" {
		parts = append(parts, o)
	}
	return ui.Panel([]string{strings.Join(parts, "\n")})
}

func labelError(err error) string {
	switch {
	case errors.Is(err, store.ErrDuplicateLabel):
		return "label already exists"
	case errors.Is(err, store.ErrEmptyLabelName):
		return "label name is empty"
	}
	return err.Error()
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, s *store.Store, logger *log.Logger) error {
	app := New(s, logger)
	defer app.Close()

	app.log.Info("session started", "labels", len(s.Labels()))
	defer func() {
		done, pending := s.Stats()
		app.log.Info("session ended", "done", done, "pending", pending)
	}()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
