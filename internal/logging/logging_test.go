package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	if log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", log.GetLevel())
	}

	log.Debug().Msg("hidden")
	log.Info().Msg("hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got %q", buf.String())
	}

	log.Warn().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("warn output missing: %q", buf.String())
	}
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug().Str("path", "a.toml").Msg("scanned file")
	if !strings.Contains(buf.String(), "scanned file") {
		t.Errorf("debug output missing: %q", buf.String())
	}
}
