package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"trace", logrus.TraceLevel},
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
	}

	for _, tc := range tests {
		log, err := New(tc.input, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("New(%q) failed: %v", tc.input, err)
		}
		if log.GetLevel() != tc.want {
			t.Errorf("New(%q) level = %v; want %v", tc.input, log.GetLevel(), tc.want)
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("chatty", &bytes.Buffer{}); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestNew_PlainText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.WithField("window", "main").Info("ready")

	out := buf.String()
	if !strings.Contains(out, `msg=ready`) || !strings.Contains(out, `window=main`) {
		t.Errorf("Unexpected log line: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Expected no color codes, got %q", out)
	}
}

func TestWailsLevel(t *testing.T) {
	tests := []struct {
		input logrus.Level
		want  logger.LogLevel
	}{
		{logrus.TraceLevel, logger.TRACE},
		{logrus.DebugLevel, logger.DEBUG},
		{logrus.InfoLevel, logger.INFO},
		{logrus.WarnLevel, logger.WARNING},
		{logrus.ErrorLevel, logger.ERROR},
		{logrus.PanicLevel, logger.ERROR},
	}

	for _, tc := range tests {
		if got := WailsLevel(tc.input); got != tc.want {
			t.Errorf("WailsLevel(%v) = %v; want %v", tc.input, got, tc.want)
		}
	}
}

func TestWailsLogger_RoutesThroughLogrus(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	wl := NewWailsLogger(log)
	wl.Trace("hidden")
	wl.Debug("asset server ready")
	wl.Warning("slow start")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Trace line should be filtered at debug level: %q", out)
	}
	if !strings.Contains(out, `msg="asset server ready"`) {
		t.Errorf("Missing debug line: %q", out)
	}
	if !strings.Contains(out, "level=warning") {
		t.Errorf("Missing warning line: %q", out)
	}
	if !strings.Contains(out, "component=wails") {
		t.Errorf("Missing component field: %q", out)
	}
}
