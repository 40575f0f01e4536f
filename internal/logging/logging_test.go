package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"schema-recon/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := logging.ParseLevel(c.in); got != c.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New(buf, zerolog.WarnLevel)

	logger.Info().Msg("quiet please")
	logger.Warn().Str("source", "Account").Msg("loud enough")

	out := buf.String()
	if strings.Contains(out, "quiet please") {
		t.Errorf("info line leaked through warn level: %s", out)
	}
	if !strings.Contains(out, "loud enough") {
		t.Errorf("warn line missing: %s", out)
	}
	if !strings.Contains(out, `"source":"Account"`) {
		t.Errorf("structured field missing: %s", out)
	}
}

func TestNewConsoleIsHumanReadable(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.NewConsole(buf, zerolog.InfoLevel, true)

	logger.Info().Msg("reconciling")

	out := buf.String()
	if strings.Contains(out, `"message"`) {
		t.Errorf("console writer emitted raw json: %s", out)
	}
	if !strings.Contains(out, "reconciling") {
		t.Errorf("message missing from console output: %s", out)
	}
}
