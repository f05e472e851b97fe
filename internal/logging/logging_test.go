package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", &buf, false)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("level saved", "name", "alpha")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "level saved") || !strings.Contains(out, "name=alpha") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, Prefix) {
		t.Errorf("missing prefix: %q", out)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}, true); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Fatal("OrDiscard(nil) returned nil")
	}
	l := Discard()
	if OrDiscard(l) != l {
		t.Error("OrDiscard should return a non-nil logger unchanged")
	}
}
