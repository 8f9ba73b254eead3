// Command tasklist is an interactive personal task schedule kept in a JSON
// data file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/tasklist/internal/cli"
	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/exitcode"
	"github.com/idilsaglam/tasklist/internal/logging"
	"github.com/idilsaglam/tasklist/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\nFlags:\n", config.AppName)
		fs.PrintDefaults()
		fmt.Fprintln(out)
		r := ui.NewRenderer(out, out, ui.Options{NoColor: os.Getenv("NO_COLOR") != ""})
		fmt.Fprintln(out, r.Help())
	}

	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitcode.Success
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return exitcode.Usage
	}

	logger := logging.NewFromConfig(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if cfg.Source != "" {
		logger.Debug("config loaded", "path", cfg.Source)
	}
	logger.Debug("settings", "data_file", cfg.DataFile, "theme", cfg.Theme, "week_start", cfg.WeekStart, "tui", cfg.TUI)

	return cli.Run(cli.Options{Config: cfg, Logger: logger})
}
