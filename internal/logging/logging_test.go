package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true, false).Info("density done", "density", 42)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if rec["msg"] != "density done" || rec["density"] != float64(42) {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestTextLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false, false)
	logger.Debug("hidden")
	logger.Info("shown", "trials", 7)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "trials=7") {
		t.Fatalf("info line missing: %q", out)
	}

	buf.Reset()
	New(&buf, false, true).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug logger dropped line: %q", buf.String())
	}
}
