package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointers so a file only overrides the
// keys it actually sets.
type fileConfig struct {
	Theme   *string     `toml:"theme"`
	Group   *bool       `toml:"group"`
	Summary *bool       `toml:"summary"`
	Log     fileLog     `toml:"log"`
	Labels  []LabelSeed `toml:"labels"`
}

type fileLog struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

type flagValues struct {
	configFile string
	theme      string
	logLevel   string
	logFile    string
	group      bool
	summary    bool
}

// Load resolves configuration from defaults, the config file, the
// environment and the flags in args. fs may be nil.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	if fs == nil {
		fs = flag.NewFlagSet("todo", flag.ContinueOnError)
	}
	cfg := &Config{}
	setDefaults(cfg)

	fv := bindFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path, explicit := fv.configFile, set["config"]
	if !explicit {
		if v := os.Getenv("TODO_CONFIG"); v != "" {
			path, explicit = v, true
		}
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		} else {
			cfg.Path = path
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	applyFlags(cfg, fv, set)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) *flagValues {
	fv := &flagValues{}
	fs.StringVar(&fv.configFile, "config", DefaultConfigFile, "Path to TOML config file")
	fs.StringVar(&fv.theme, "theme", cfg.Theme, "Color theme: "+strings.Join(Themes, ", "))
	fs.StringVar(&fv.logLevel, "log-level", cfg.Log.Level, "Log level: debug, info, warn, error")
	fs.StringVar(&fv.logFile, "log-file", cfg.Log.File, "Write the session log to this file")
	fs.BoolVar(&fv.group, "group", cfg.Group, "Group the exit summary by pending/done")
	fs.BoolVar(&fv.summary, "summary", cfg.Summary, "Print a summary of the session on exit")
	return fv
}

func applyFlags(cfg *Config, fv *flagValues, set map[string]bool) {
	if set["theme"] {
		cfg.Theme = fv.theme
	}
	if set["log-level"] {
		cfg.Log.Level = fv.logLevel
	}
	if set["log-file"] {
		cfg.Log.File = fv.logFile
	}
	if set["group"] {
		cfg.Group = fv.group
	}
	if set["summary"] {
		cfg.Summary = fv.summary
	}
}

func loadConfigFile(cfg *Config, path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if fc.Theme != nil {
		cfg.Theme = *fc.Theme
	}
	if fc.Group != nil {
		cfg.Group = *fc.Group
	}
	if fc.Summary != nil {
		cfg.Summary = *fc.Summary
	}
	if fc.Log.Level != nil {
		cfg.Log.Level = *fc.Log.Level
	}
	if fc.Log.File != nil {
		cfg.Log.File = *fc.Log.File
	}
	if md.IsDefined("labels") {
		cfg.Labels = fc.Labels
	}
	return nil
}

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TODO_GROUP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TODO_GROUP: %w", err)
		}
		cfg.Group = b
	}
	return nil
}
