package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	DefaultConfigFile = "todo.toml"
	DefaultTheme      = "classic"
	DefaultLogLevel   = "info"
)

// Themes lists the accepted values for Config.Theme.
var Themes = []string{"classic", "neon", "mono"}

// Config is the resolved runtime configuration.
type Config struct {
	Theme   string      `toml:"theme"`
	Group   bool        `toml:"group"`   // group the exit summary by pending/done
	Summary bool        `toml:"summary"` // print the exit summary
	Log     LogConfig   `toml:"log"`
	Labels  []LabelSeed `toml:"labels"`

	// Path is the config file that was loaded, empty when none.
	Path string `toml:"-"`
}

// LogConfig controls the session log. The TUI owns the terminal, so
// logs only go to a file; an empty File discards them.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LabelSeed is a catalog label created at startup.
type LabelSeed struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// DefaultLabels seeds the catalog when the config file has no labels.
func DefaultLabels() []LabelSeed {
	return []LabelSeed{
		{Name: "bug", Color: "#FF5F87"},
		{Name: "feature", Color: "#5FAFFF"},
		{Name: "chore", Color: "245"},
	}
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Summary = true
	cfg.Log.Level = DefaultLogLevel
	cfg.Labels = DefaultLabels()
}

// Validate checks field values after all sources are merged.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if !validTheme(c.Theme) {
		return fmt.Errorf("theme: unknown theme %q (want one of %s)", c.Theme, strings.Join(Themes, ", "))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	seen := make(map[string]bool, len(c.Labels))
	for i, l := range c.Labels {
		name := strings.ToLower(strings.TrimSpace(l.Name))
		if name == "" {
			return fmt.Errorf("labels[%d].name: empty", i)
		}
		if seen[name] {
			return fmt.Errorf("labels[%d].name: duplicate label %q", i, l.Name)
		}
		seen[name] = true
	}
	return nil
}

// LogLevel returns the parsed log level; call after Validate.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
