// Package logging builds the session logger.
//
// The terminal belongs to the TUI while it runs, so log output goes to a
// file or nowhere. Every line carries the session id.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options holds configuration for the session logger.
type Options struct {
	Level log.Level
	File  string // empty discards output
}

// Session is a logger bound to one run of the app.
type Session struct {
	ID     string
	Logger *log.Logger
	closer io.Closer
}

// Open creates the session logger, creating the log file's directory
// when needed.
func Open(opts Options) (*Session, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer
	)
	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	return newSession(w, closer, opts.Level), nil
}

// New returns a session logging to w. Used by tests and callers that
// manage the writer themselves.
func New(w io.Writer, level log.Level) *Session {
	return newSession(w, nil, level)
}

func newSession(w io.Writer, closer io.Closer, level log.Level) *Session {
	id := uuid.NewString()
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "todo",
	}).With("session", id)
	return &Session{ID: id, Logger: logger, closer: closer}
}

// Close closes the log file, if any.
func (s *Session) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
