package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoGoesToFileSinkOnly(t *testing.T) {
	var file, stderr bytes.Buffer
	logger := NewWithWriters(&file, &stderr)

	logger.Info("fetching entry", "entry_id", 42)

	if !strings.Contains(file.String(), "fetching entry") {
		t.Errorf("file sink missing info line: %q", file.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr sink should not receive info lines, got %q", stderr.String())
	}
}

func TestWarnGoesToBothSinks(t *testing.T) {
	var file, stderr bytes.Buffer
	logger := NewWithWriters(&file, &stderr)

	logger.Warn("download failed", "attachment_id", 7)

	if !strings.Contains(file.String(), "download failed") {
		t.Errorf("file sink missing warn line: %q", file.String())
	}
	if !strings.Contains(stderr.String(), "download failed") {
		t.Errorf("stderr sink missing warn line: %q", stderr.String())
	}
}

func TestWithAttrsPropagates(t *testing.T) {
	var file, stderr bytes.Buffer
	logger := NewWithWriters(&file, &stderr).With("component", "client")

	logger.Warn("boom")

	for name, buf := range map[string]*bytes.Buffer{"file": &file, "stderr": &stderr} {
		if !strings.Contains(buf.String(), "component=client") {
			t.Errorf("%s sink missing attr: %q", name, buf.String())
		}
	}
}

func TestNopDiscards(t *testing.T) {
	// Must not panic; output goes nowhere.
	NewNop().Info("ignored")
}
