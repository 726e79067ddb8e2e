package tracelog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelForEscalatesWithVerboseCount(t *testing.T) {
	cases := []struct {
		count int
		want  slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{5, slog.LevelDebug},
	}
	for _, c := range cases {
		if got := LevelFor(c.count); got != c.want {
			t.Errorf("LevelFor(%d) = %v, want %v", c.count, got, c.want)
		}
	}
}

func TestNewSuppressesBelowConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, 0)
	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be suppressed at verbosity 0, got %q", buf.String())
	}
	logger.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("expected warn to be logged, got %q", buf.String())
	}
}
