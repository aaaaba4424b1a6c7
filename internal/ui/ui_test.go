package ui

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name              string
		done, total, want int
	}{
		{"empty", 0, 0, 0},
		{"half", 2, 4, 50},
		{"full", 3, 3, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressBar(tt.done, tt.total, 10)
			if n := strings.Count(got, "█") + strings.Count(got, "░"); n != 10 {
				t.Errorf("bar width: got %d cells, want 10 (%q)", n, got)
			}
			if !strings.HasSuffix(got, fmt.Sprintf("%3d%%", tt.want)) {
				t.Errorf("ProgressBar(%d, %d): got %q, want %d%%", tt.done, tt.total, got, tt.want)
			}
		})
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")

	for _, name := range []string{"classic", "neon", "mono"} {
		SetTheme(name)
		if got := Current().Name; got != name {
			t.Errorf("SetTheme(%q): got %q", name, got)
		}
	}
	SetTheme("unknown")
	if got := Current().Name; got != "classic" {
		t.Errorf("unknown theme: got %q, want classic", got)
	}
}

func TestMonoChip(t *testing.T) {
	defer SetTheme("classic")
	SetTheme("mono")
	if got := Current().Chip("bug", "#ff0000"); got != "[bug]" {
		t.Errorf("Chip: got %q, want [bug]", got)
	}
	if got := Current().Box(true); got != "[x]" {
		t.Errorf("Box(true): got %q", got)
	}
}

func TestPanelContainsLines(t *testing.T) {
	out := Panel([]string{"first", "second"})
	for _, want := range []string{"first", "second"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel %q lacks %q", out, want)
		}
	}
	if strings.Count(out, "\n") < 3 {
		t.Errorf("panel should have a border row above and below: %q", out)
	}
}

func TestHeaderCounts(t *testing.T) {
	got := Header(2, 3)
	for _, want := range []string{"Todos", "2", "3", "Total 5"} {
		if !strings.Contains(got, want) {
			t.Errorf("Header: %q lacks %q", got, want)
		}
	}
}

func TestStatusOutput(t *testing.T) {
	var errOut bytes.Buffer
	SetOutput(&errOut)
	defer SetOutput(os.Stderr)

	Fail("broken")
	if !strings.Contains(errOut.String(), "broken") {
		t.Errorf("Fail wrote %q", errOut.String())
	}
}
