package logger

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/electa-app/electa/pkg/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWithFields(t *testing.T) {
	cfg := &config.Config{Env: "development", LogLevel: "debug", LogFormat: "json"}

	log := New(cfg)
	if log == nil {
		t.Fatal("New returned nil")
	}

	derived := log.WithField("component", "test").
		WithFields(map[string]interface{}{"a": 1, "b": "x"})
	if derived == nil {
		t.Fatal("derived logger is nil")
	}

	// Derivation must not mutate the parent.
	if log == derived {
		t.Error("WithField should return a new logger")
	}
}
