package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor

	// Mono themes render label chips as plain [name] tags.
	Mono bool
}

var current = classic()

// SetTheme switches the current theme; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current returns the active theme.
func Current() Theme { return current }

func classic() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Name:    "classic",
		Title:   s.Bold(true),
		Muted:   s.Faint(true),
		Accent:  s.Foreground(lipgloss.Color("12")),
		Success: s.Foreground(lipgloss.Color("42")),
		Error:   s.Foreground(lipgloss.Color("9")).Bold(true),
		Pending: s.Foreground(lipgloss.Color("214")),

		Selected: s.Bold(true).Reverse(true),
		Done:     s.Faint(true).Strikethrough(true),
		Help:     s.Faint(true),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.Border = lipgloss.ThickBorder()
	t.BorderColor = lipgloss.Color("13")
	return t
}

func mono() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: s, Muted: s, Accent: s, Success: s, Error: s, Pending: s,
		Selected: s.Reverse(true),
		Done:     s,
		Help:     s,

		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-",
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		Mono:        true,
	}
}

// Box returns the checkbox symbol for a completion state.
func (t Theme) Box(done bool) string {
	if done {
		return t.BoxChecked
	}
	return t.BoxUnchecked
}

// Chip renders a label tag. color is a hex or ANSI color; empty uses
// the accent color.
func (t Theme) Chip(name, color string) string {
	if t.Mono {
		return "[" + name + "]"
	}
	st := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0"))
	if color != "" {
		st = st.Background(lipgloss.Color(color))
	} else {
		st = st.Background(lipgloss.Color("12"))
	}
	return st.Render(name)
}
