package logrus

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestNewLogrusLogger(t *testing.T) {
	logger := NewLogrusLogger("debug")

	if logger == nil {
		t.Fatal("NewLogrusLogger returned nil")
	}
	if logger.logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", logger.logger.GetLevel())
	}
}

func TestNewLogrusLogger_UnknownLevelFallsBack(t *testing.T) {
	logger := NewLogrusLogger("chatty")

	if logger.logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info fallback", logger.logger.GetLevel())
	}
}

func TestLogrusLogger_FieldsIncluded(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusLogger("info")
	logger.logger.SetOutput(&buf)

	logger.Info("feed scraped", map[string]interface{}{
		"feed_url": "https://deals.example.com/feed",
		"items":    12,
	})

	out := buf.String()
	if !strings.Contains(out, "feed scraped") {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, "feed_url") {
		t.Errorf("output missing field key: %s", out)
	}
}

func TestLogrusLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusLogger("warn")
	logger.logger.SetOutput(&buf)

	logger.Debug("not shown", nil)
	logger.Info("not shown either", nil)
	logger.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "not shown") {
		t.Errorf("below-level messages should be suppressed: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestLogrusLogger_NilFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusLogger("info")
	logger.logger.SetOutput(&buf)

	// Must not panic
	logger.Info("bare message", nil)
	logger.Error("bare error", nil)

	if !strings.Contains(buf.String(), "bare message") {
		t.Errorf("bare message missing: %s", buf.String())
	}
}
