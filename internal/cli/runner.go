package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Swapped in tests.
var (
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	runTUI               = tui.Run
	isTerminal           = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }
)

// Run parses flags, runs one interactive session and returns an exit
// code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			PrintHelp()
			return 0
		}
	}

	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			PrintHelp()
			return 0
		}
		ui.Fail(err.Error())
		return 2
	}
	if fs.NArg() > 0 {
		ui.Fail("unexpected argument: " + fs.Arg(0))
		fmt.Fprintln(stderr)
		PrintHelp()
		return 2
	}
	ui.SetTheme(cfg.Theme)

	if !isTerminal() {
		ui.Fail("todo needs an interactive terminal")
		return 1
	}

	session, err := logging.Open(logging.Options{Level: cfg.LogLevel(), File: cfg.Log.File})
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer session.Close()
	if cfg.Path != "" {
		session.Logger.Debug("config loaded", "path", cfg.Path)
	}

	st, err := newStore(cfg, session.Logger)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}

	if err := runTUI(ctx, st, session.Logger); err != nil {
		session.Logger.Error("tui failed", "err", err)
		ui.Fail("tui: " + err.Error())
		return 1
	}

	if cfg.Summary {
		fmt.Fprintln(stdout, ui.Panel(summaryLines(st.All(), cfg.Group)))
	}
	return 0
}

// newStore builds the session store and seeds the label catalog.
func newStore(cfg *config.Config, logger *log.Logger) (*store.Store, error) {
	st := store.New(logger)
	for _, l := range cfg.Labels {
		if _, err := st.CreateLabel(l.Name, l.Color); err != nil {
			return nil, fmt.Errorf("seed labels: %w", err)
		}
	}
	return st, nil
}

func PrintHelp() {
	fmt.Fprintf(stdout, `todo - a tiny terminal todo list

Usage:
  todo [flags]

Flags:
  -config <file>     TOML config (default ./todo.toml when present)
  -theme <name>      classic, neon or mono
  -log-file <file>   write the session log to a file
  -log-level <lvl>   debug, info, warn or error
  -group             group the exit summary by pending/done
  -summary=false     do not print the exit summary

Keys:
  a / n              add a todo (enter submits, esc cancels)
  space / x          toggle done
  l                  edit labels (enter toggles, ctrl+n creates)
  e                  edit text
  d                  delete
  /                  filter
  q                  quit

Todos live in memory only and are gone when you quit.
`)
}
