package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/tillpad/tillpad/internal/config"
	"github.com/tillpad/tillpad/internal/logging"
	"github.com/tillpad/tillpad/internal/store"
	"github.com/tillpad/tillpad/internal/tui"
)

func main() {
	cfgPath := pflag.String("config", "", "path to config file")
	logLevel := pflag.String("log-level", "", "override log level (debug, info, warn, error)")
	pflag.Parse()

	if *cfgPath != "" {
		os.Setenv("TILLPAD_CONFIG", *cfgPath)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	closeLog, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.Info("starting", "log_level", cfg.Log.Level)

	app := tui.New(cfg, store.New(), cfg.Tax.Policy())
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tillpad:", err)
		os.Exit(1)
	}
}
