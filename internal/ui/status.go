package ui

import (
	"fmt"
	"io"
	"os"
)

var stderr io.Writer = os.Stderr

// SetOutput redirects Fail.
func SetOutput(w io.Writer) { stderr = w }

func Fail(msg string) {
	t := Current()
	fmt.Fprintln(stderr, t.Error.Render("✖ "+msg))
}
