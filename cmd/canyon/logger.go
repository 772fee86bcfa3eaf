package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/canyon-runner/internal/config"
)

// newFileLogger opens the configured log file for append. The terminal
// belongs to the alternate screen while a TUI runs, so logs go to disk.
func newFileLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	path := config.ExpandHome(cfg.Log.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: open %s: %w", path, err)
	}
	return newLogger(f, cfg), f, nil
}

func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "canyon",
		Level:           cfg.LogLevel(),
	})
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
