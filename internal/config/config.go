// Package config loads session settings from defaults, a TOML file, the
// environment and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
)

const (
	// AppName is the configuration directory name.
	AppName = "tasklist"

	// FileName is the configuration file inside the directory.
	FileName = "config.toml"
)

// ErrInvalid reports a configuration value outside its allowed set.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of one session.
type Config struct {
	DataFile    string `toml:"data_file"`
	Theme       string `toml:"theme"`
	WeekStart   string `toml:"week_start"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	ClearScreen bool   `toml:"clear_screen"`
	NoColor     bool   `toml:"no_color"`
	TUI         bool   `toml:"tui"`

	// Source is the config file that was read, empty when none was.
	Source string `toml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataFile:    jsonstore.DefaultFileName,
		Theme:       "classic",
		WeekStart:   "sunday",
		LogLevel:    "warn",
		LogFormat:   "text",
		ClearScreen: true,
	}
}

// DefaultDir returns the configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultPath returns the configuration file read when -config is not given.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), FileName)
}

type flagValues struct {
	file, config, theme, logLevel string
	tui, noColor                  bool
}

func (v *flagValues) bind(fs *flag.FlagSet) {
	fs.StringVar(&v.file, "file", "", "path to the data file (default "+jsonstore.DefaultFileName+")")
	fs.StringVar(&v.config, "config", "", "path to the config file")
	fs.StringVar(&v.theme, "theme", "", "color theme: classic, neon or mono")
	fs.StringVar(&v.logLevel, "log-level", "", "diagnostics level: debug, info, warn or error")
	fs.BoolVar(&v.tui, "tui", false, "run the full-screen interface")
	fs.BoolVar(&v.noColor, "no-color", false, "disable colors")
}

// apply copies the flags the user actually set.
func (v *flagValues) apply(cfg *Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.DataFile = v.file
		case "theme":
			cfg.Theme = v.theme
		case "log-level":
			cfg.LogLevel = v.logLevel
		case "tui":
			cfg.TUI = v.tui
		case "no-color":
			cfg.NoColor = v.noColor
		}
	})
}

// Load parses args with fs and layers the result over the config file and
// the environment. A nil fs gets a fresh ContinueOnError set.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	if fs == nil {
		fs = flag.NewFlagSet(AppName, flag.ContinueOnError)
	}
	var fv flagValues
	fv.bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q: %w", fs.Arg(0), ErrInvalid)
	}

	cfg := Default()

	path, explicit := fv.config, fv.config != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := loadFile(cfg, path, explicit); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	loadFromEnv(cfg)
	fv.apply(cfg, fs)

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile decodes path into cfg. A missing default file is not an error.
func loadFile(cfg *Config, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}
	cfg.Source = path
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLIST_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TASKLIST_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TASKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASKLIST_WEEK_START"); v != "" {
		cfg.WeekStart = v
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
}

// finalize normalizes names and resolves the data file to an absolute path.
func finalize(cfg *Config) error {
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.WeekStart = strings.ToLower(strings.TrimSpace(cfg.WeekStart))
	if _, err := parseWeekday(cfg.WeekStart); err != nil {
		return err
	}
	path, err := jsonstore.DataPath(expandPath(cfg.DataFile))
	if err != nil {
		return fmt.Errorf("data file: %w", err)
	}
	cfg.DataFile = path
	return nil
}

// Weekday returns the first day of the calendar week.
func (c *Config) Weekday() time.Weekday {
	d, err := parseWeekday(c.WeekStart)
	if err != nil {
		return time.Sunday
	}
	return d
}

func parseWeekday(s string) (time.Weekday, error) {
	switch s {
	case "", "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	}
	return time.Sunday, fmt.Errorf("week_start %q, want sunday or monday: %w", s, ErrInvalid)
}

// expandPath expands a leading ~ to the home directory.
func expandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
