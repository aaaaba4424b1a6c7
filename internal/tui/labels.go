package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// labelPicker is the "editing-labels" state of a row: it lists the
// catalog, ticks the labels attached to the todo and emits label toggles
// for the App to apply.
type labelPicker struct {
	todo    model.Todo
	catalog []model.Label
	matches []int // indexes into catalog, best match first
	cursor  int
	filter  textinput.Model
	err     string
	keys    keyMap
}

func newLabelPicker(todo model.Todo, catalog []model.Label, keys keyMap) labelPicker {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Filter labels..."
	ti.CharLimit = 64
	ti.Focus()

	p := labelPicker{todo: todo, catalog: catalog, filter: ti, keys: keys}
	p.refilter()
	return p
}

// SetTodo refreshes the ticked labels after the store changed.
func (p *labelPicker) SetTodo(t model.Todo) { p.todo = t }

// SetCatalog replaces the selectable labels.
func (p *labelPicker) SetCatalog(c []model.Label) {
	p.catalog = c
	p.refilter()
}

// SetError shows msg under the list until the next key press.
func (p *labelPicker) SetError(msg string) { p.err = msg }

// Current returns the label under the cursor.
func (p labelPicker) Current() (model.Label, bool) {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return model.Label{}, false
	}
	return p.catalog[p.matches[p.cursor]], true
}

func (p labelPicker) Update(msg tea.Msg) (labelPicker, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(msg)
		return p, cmd
	}
	p.err = ""

	switch {
	case key.Matches(km, p.keys.Cancel):
		return p, emit(closeLabelsMsg{})
	case key.Matches(km, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil
	case key.Matches(km, p.keys.Down):
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
		return p, nil
	case key.Matches(km, p.keys.Submit):
		l, ok := p.Current()
		if !ok {
			return p, nil
		}
		return p, emit(toggleLabelMsg{todoID: p.todo.ID, label: l})
	case key.Matches(km, p.keys.NewLabel):
		name := strings.TrimSpace(p.filter.Value())
		if name == "" {
			return p, nil
		}
		return p, emit(createLabelMsg{todoID: p.todo.ID, name: name})
	}

	var cmd tea.Cmd
	before := p.filter.Value()
	p.filter, cmd = p.filter.Update(msg)
	if p.filter.Value() != before {
		p.refilter()
	}
	return p, cmd
}

func (p *labelPicker) refilter() {
	pattern := strings.TrimSpace(p.filter.Value())
	p.matches = make([]int, 0, len(p.catalog))
	if pattern == "" {
		for i := range p.catalog {
			p.matches = append(p.matches, i)
		}
	} else {
		names := make([]string, len(p.catalog))
		for i, l := range p.catalog {
			names[i] = l.Name
		}
		for _, m := range fuzzy.Find(pattern, names) {
			p.matches = append(p.matches, m.Index)
		}
	}
	if p.cursor >= len(p.matches) {
		p.cursor = len(p.matches) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p labelPicker) View() string {
	th := ui.Current()
	var b strings.Builder
	fmt.Fprintf(&b, "Labels for %s\n", th.Title.Render(p.todo.Text))
	b.WriteString(p.filter.View())
	b.WriteString("\n")

	if len(p.matches) == 0 {
		msg := "no labels"
		if p.filter.Value() != "" {
			msg = "no match, ctrl+n creates it"
		}
		b.WriteString(th.Muted.Render(msg))
	}
	for i, idx := range p.matches {
		l := p.catalog[idx]
		prefix := "  "
		if i == p.cursor {
			prefix = th.Selected.Render(">") + " "
		}
		box := th.Muted.Render(th.Box(false))
		if model.HasLabel(p.todo.Labels, l.ID) {
			box = th.Success.Render(th.Box(true))
		}
		fmt.Fprintf(&b, "%s%s %s", prefix, box, th.Chip(l.Name, l.Color))
		if i < len(p.matches)-1 {
			b.WriteString("\n")
		}
	}
	if p.err != "" {
		b.WriteString("\n" + th.Error.Render(p.err))
	}
	b.WriteString("\n" + th.Help.Render("enter toggle • ctrl+n new label • esc close"))
	return b.String()
}
