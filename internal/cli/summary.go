package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// summaryLines renders the end-of-session panel body: header, progress
// and the todos, flat or grouped by pending/done.
func summaryLines(todos []model.Todo, group bool) []string {
	d, p := stats(todos)

	var lines []string
	lines = append(lines, ui.Header(d, p))
	lines = append(lines, ui.Current().Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Current().Muted.Render("Session ended, todos were not saved"))
	return lines
}

func stats(todos []model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// maxTextWidth caps a todo's text in terminal cells.
const maxTextWidth = 80

func flatLines(todos []model.Todo) []string {
	th := ui.Current()
	if len(todos) == 0 {
		return []string{th.Muted.Render("no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		idx := fmt.Sprintf("%3s", fmt.Sprintf("#%d", t.ID))
		box, color := th.Box(false), th.Muted
		if t.Completed {
			box, color = th.Box(true), th.Success
		}
		text := runewidth.Truncate(t.Text, maxTextWidth, "...")
		line := fmt.Sprintf("%s %s %s", th.Muted.Render(idx), color.Render(box), text)
		if len(t.Labels) > 0 {
			chips := make([]string, 0, len(t.Labels))
			for _, l := range t.Labels {
				chips = append(chips, th.Chip(l.Name, l.Color))
			}
			line += " " + strings.Join(chips, " ")
		}
		out = append(out, line)
	}
	return out
}

func groupLines(todos []model.Todo) []string {
	var pend, done []model.Todo
	for _, t := range todos {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	th := ui.Current()
	var lines []string
	lines = append(lines, th.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
