package cli

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

func TestFlatLinesTruncatesByWidth(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	tests := []struct {
		name      string
		text      string
		truncated bool
	}{
		{name: "short ascii", text: "Buy milk"},
		{name: "long ascii", text: strings.Repeat("a", 120), truncated: true},
		{name: "wide runes", text: strings.Repeat("牛乳", 40) + "a", truncated: true},
		{name: "accents", text: strings.Repeat("é", 100), truncated: true},
		{name: "wide fits", text: strings.Repeat("牛", 40)},
	}

	// id and checkbox columns, identical for every pending #1 row
	prefix := strings.TrimSuffix(ansi.Strip(flatLines([]model.Todo{{ID: 1, Text: "x"}})[0]), "x")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := flatLines([]model.Todo{{ID: 1, Text: tt.text}})
			if len(lines) != 1 {
				t.Fatalf("lines: got %d, want 1", len(lines))
			}
			line := ansi.Strip(lines[0])
			if !utf8.ValidString(line) {
				t.Fatalf("line is not valid UTF-8: %q", line)
			}
			if got := strings.HasSuffix(line, "..."); got != tt.truncated {
				t.Errorf("truncated: got %v, want %v (%q)", got, tt.truncated, line)
			}
			if !tt.truncated && !strings.HasSuffix(line, tt.text) {
				t.Errorf("text changed: %q", line)
			}
			body := strings.TrimPrefix(line, prefix)
			if w := runewidth.StringWidth(body); w > maxTextWidth {
				t.Errorf("text width: got %d, want <= %d", w, maxTextWidth)
			}
		})
	}
}
