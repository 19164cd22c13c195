package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger shared by every command. An empty
// level means info.
func newLogger(level string) (*log.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: lvl == log.DebugLevel,
	}), nil
}
