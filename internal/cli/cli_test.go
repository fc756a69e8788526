package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseArgs_ValidArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "defaults",
			args:     []string{},
			expected: Config{LogLevel: "info", ExportDir: ".", Width: 800, Height: 600},
		},
		{
			name:     "log level",
			args:     []string{"-log-level", "debug"},
			expected: Config{LogLevel: "debug", ExportDir: ".", Width: 800, Height: 600},
		},
		{
			name:     "log level shorthand",
			args:     []string{"-l", "error"},
			expected: Config{LogLevel: "error", ExportDir: ".", Width: 800, Height: 600},
		},
		{
			name:     "mute and script",
			args:     []string{"-mute", "-script", "session.json", "-out", "/tmp/art"},
			expected: Config{LogLevel: "info", Mute: true, Script: "session.json", ExportDir: "/tmp/art", Width: 800, Height: 600},
		},
		{
			name:     "window size",
			args:     []string{"-width", "1024", "-height", "768"},
			expected: Config{LogLevel: "info", ExportDir: ".", Width: 1024, Height: 768},
		},
		{
			name:     "help",
			args:     []string{"-h"},
			expected: Config{LogLevel: "info", ExportDir: ".", Width: 800, Height: 600, ShowHelp: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "")
			t.Setenv("PLAYROOM_MUTE", "")
			cfg, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *cfg != tt.expected {
				t.Errorf("got %+v, want %+v", *cfg, tt.expected)
			}
		})
	}
}

func TestParseArgs_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown level", []string{"-l", "verbose"}},
		{"zero width", []string{"-width", "0"}},
		{"unknown flag", []string{"-fullscreen"}},
		{"positional", []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "")
			if _, err := ParseArgs(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseArgs_Environment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("PLAYROOM_MUTE", "true")

	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if !cfg.Mute {
		t.Error("PLAYROOM_MUTE=true should mute")
	}

	// Flags win over the environment.
	cfg, err = ParseArgs([]string{"-l", "debug", "-mute=false"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.Mute {
		t.Errorf("flags should take precedence, got %+v", *cfg)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("warn", &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=1") {
		t.Errorf("missing warn record: %q", out)
	}

	if _, err := NewLogger("loud", &buf); err == nil {
		t.Error("expected error for unknown level")
	}
	if lvl, _ := ParseLevel("debug"); lvl != slog.LevelDebug {
		t.Errorf("ParseLevel(debug) = %v", lvl)
	}
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&buf)
	if !strings.Contains(buf.String(), "PLAYROOM_MUTE") {
		t.Error("help should document PLAYROOM_MUTE")
	}
}
