// Package cli parses the command line of the playroom example.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds the settings parsed from flags and environment.
type Config struct {
	LogLevel  string // debug, info, warn or error
	Mute      bool   // run without an audio device
	Script    string // optional session script to replay
	ExportDir string // where drawings are saved
	Width     int    // window width in pixels
	Height    int    // window height in pixels
	ShowHelp  bool
}

// ParseArgs parses args (without the program name). Flags take precedence
// over the LOG_LEVEL and PLAYROOM_MUTE environment variables.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("playroom", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	config := &Config{}
	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (shorthand)")
	fs.BoolVar(&config.Mute, "mute", false, "disable audio")
	fs.StringVar(&config.Script, "script", "", "replay a JSON session script")
	fs.StringVar(&config.ExportDir, "out", ".", "directory for saved drawings")
	fs.IntVar(&config.Width, "width", 800, "window width")
	fs.IntVar(&config.Height, "height", 600, "window height")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["log-level"] && !set["l"] {
		if env := os.Getenv("LOG_LEVEL"); env != "" {
			config.LogLevel = strings.ToLower(env)
		}
	}
	if !set["mute"] {
		if env := os.Getenv("PLAYROOM_MUTE"); env != "" {
			config.Mute = env == "1" || strings.ToLower(env) == "true"
		}
	}

	if _, err := ParseLevel(config.LogLevel); err != nil {
		return nil, err
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %dx%d", config.Width, config.Height)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return config, nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
}

// NewLogger builds a text logger writing to w at the given level.
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// PrintHelp writes usage to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `playroom - mini-games for small hands

Usage:
  playroom [options]

Options:
  -l, -log-level <level>   log level: debug, info, warn, error (default: info)
  -mute                    run without sound
  -script <file>           replay a JSON session script
  -out <dir>               directory for saved drawings (default: .)
  -width, -height <px>     window size (default: 800x600)
  -h, -help                show this help

Environment Variables:
  LOG_LEVEL=<level>        log level
  PLAYROOM_MUTE=1          run without sound
`)
}
