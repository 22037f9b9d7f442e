package logx

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		Configure("info", "text")
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	buf := captureOutput(t)
	Configure("info", "text")

	Debugf("hidden %d", 1)
	Infof("visible %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %s", out)
	}
	if !strings.Contains(out, "visible 2") {
		t.Fatalf("info line missing: %s", out)
	}
}

func TestJSONFormatterWithFields(t *testing.T) {
	buf := captureOutput(t)
	Configure("debug", "json")

	WithFields(Fields{"posting_id": "42"}).WithField("attempt", 1).Warnf("counter update failed")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, buf.String())
	}
	if line["msg"] != "counter update failed" {
		t.Errorf("unexpected msg %v", line["msg"])
	}
	if line["level"] != "warning" {
		t.Errorf("unexpected level %v", line["level"])
	}
	if line["posting_id"] != "42" {
		t.Errorf("missing posting_id field: %v", line)
	}
}
