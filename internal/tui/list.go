package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// todoItem adapts model.Todo to bubbles/list.Item
type todoItem struct {
	todo model.Todo
}

func (i todoItem) FilterValue() string {
	parts := make([]string, 0, len(i.todo.Labels)+1)
	parts = append(parts, i.todo.Text)
	for _, l := range i.todo.Labels {
		parts = append(parts, l.Name)
	}
	return strings.Join(parts, " ")
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+renderRow(it.todo))
}

// renderRow draws "☐ text [label] [label]" for one todo.
func renderRow(t model.Todo) string {
	th := ui.Current()
	box := th.Muted.Render(th.Box(false))
	text := t.Text
	if t.Completed {
		box = th.Success.Render(th.Box(true))
		text = th.Done.Render(text)
	}
	var b strings.Builder
	b.WriteString(box)
	b.WriteString(" ")
	b.WriteString(text)
	for _, l := range t.Labels {
		b.WriteString(" ")
		b.WriteString(th.Chip(l.Name, l.Color))
	}
	return b.String()
}

// listView renders the todo collection. It holds no domain state; rows
// are replaced wholesale by SetTodos.
type listView struct {
	list list.Model
	keys keyMap

	// inline text edit
	editing bool
	editID  int
	ti      textinput.Model

	pending tea.Cmd // returned by list.SetItems, flushed by the App
}

func newListView(keys keyMap) listView {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = ui.Header(0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	// "l" and "d" are row actions here, not paging keys.
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "pgdown", "f"), key.WithHelp("→/f/pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "pgup", "b"), key.WithHelp("←/b/pgup", "prev page"))

	extra := keys.rowHelp()
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return append(extra, keys.Quit) }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Edit todo text..."
	ti.CharLimit = 200

	return listView{list: l, keys: keys, ti: ti}
}

// SetTodos replaces the rendered rows with a store snapshot.
func (v *listView) SetTodos(todos []model.Todo) {
	items := make([]list.Item, 0, len(todos))
	done := 0
	for _, t := range todos {
		items = append(items, todoItem{todo: t})
		if t.Completed {
			done++
		}
	}
	v.list.Title = ui.Header(done, len(todos)-done)
	v.pending = tea.Batch(v.pending, v.list.SetItems(items))
	if n := len(v.list.Items()); n > 0 && v.list.Index() >= n {
		v.list.Select(n - 1)
	}
	if v.editing {
		if _, ok := v.find(v.editID); !ok {
			v.stopEdit()
		}
	}
}

// Flush returns commands queued by SetTodos.
func (v *listView) Flush() tea.Cmd {
	cmd := v.pending
	v.pending = nil
	return cmd
}

// Selected returns the todo under the cursor.
func (v listView) Selected() (model.Todo, bool) {
	it, ok := v.list.SelectedItem().(todoItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}

// Busy reports whether keys belong to the view (editing or typing a
// filter) rather than the App's global bindings.
func (v listView) Busy() bool {
	return v.editing || v.list.FilterState() == list.Filtering
}

func (v *listView) SetSize(w, h int) { v.list.SetSize(w, h) }

func (v listView) Update(msg tea.Msg) (listView, tea.Cmd) {
	if v.editing {
		return v.updateEdit(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && v.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, v.keys.Toggle):
			if t, ok := v.Selected(); ok {
				return v, emit(toggleCompletedMsg{id: t.ID})
			}
			return v, nil
		case key.Matches(km, v.keys.Labels):
			if t, ok := v.Selected(); ok {
				return v, emit(openLabelsMsg{id: t.ID})
			}
			return v, nil
		case key.Matches(km, v.keys.Delete):
			if t, ok := v.Selected(); ok {
				return v, emit(deleteTodoMsg{id: t.ID})
			}
			return v, nil
		case key.Matches(km, v.keys.Edit):
			if t, ok := v.Selected(); ok {
				v.editing = true
				v.editID = t.ID
				v.ti.SetValue(t.Text)
				v.ti.CursorEnd()
				return v, v.ti.Focus()
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v listView) updateEdit(msg tea.Msg) (listView, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, v.keys.Submit):
			id, text := v.editID, strings.TrimSpace(v.ti.Value())
			v.stopEdit()
			if text == "" {
				return v, nil
			}
			return v, emit(updateTodoMsg{patch: model.WithText(id, text)})
		case key.Matches(km, v.keys.Cancel):
			v.stopEdit()
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.ti, cmd = v.ti.Update(msg)
	return v, cmd
}

func (v *listView) stopEdit() {
	v.editing = false
	v.editID = 0
	v.ti.SetValue("")
	v.ti.Blur()
}

func (v listView) find(id int) (model.Todo, bool) {
	for _, it := range v.list.Items() {
		if ti, ok := it.(todoItem); ok && ti.todo.ID == id {
			return ti.todo, true
		}
	}
	return model.Todo{}, false
}

// EditView renders the inline edit box, empty when not editing.
func (v listView) EditView() string {
	if !v.editing {
		return ""
	}
	return "Edit todo\n" + v.ti.View()
}

func (v listView) View() string { return v.list.View() }
