package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// config holds settings shared by all subcommands.
type config struct {
	LogLevel string
	DSN      string
}

func defaultConfig() config {
	return config{LogLevel: "info"}
}

// fromEnv overlays UUIDGEN_* environment variables onto cfg. Flags given on
// the command line are applied afterwards and win.
func fromEnv(cfg *config, getenv func(string) string) {
	if v := getenv("UUIDGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("UUIDGEN_DSN"); v != "" {
		cfg.DSN = v
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
