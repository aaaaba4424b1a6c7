// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. Config file (-config flag, else ./todo.toml when present)
// 3. Environment variables (TODO_*)
// 4. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// Todos themselves are never read from or written to disk; the file only
// tunes the terminal UI and seeds the label catalog.
package config
