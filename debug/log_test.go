package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestLogDisabledIsNoop(t *testing.T) {
	Disable()
	Log("decode", "should not appear")
	if Enabled() {
		t.Fatal("expected logging disabled")
	}
}

func TestEnableAndLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	if err := Enable(dir); err != nil {
		t.Fatalf("enable: %v", err)
	}
	defer Disable()

	Log("decode", "status 0x%02X", 0x90)

	out := readLog(t, dir)
	if !strings.Contains(out, "Debug logging started") {
		t.Errorf("missing start banner in %q", out)
	}
	if !strings.Contains(out, "decode") || !strings.Contains(out, "status 0x90") {
		t.Errorf("missing log line in %q", out)
	}
}

func TestLogEvery(t *testing.T) {
	dir := t.TempDir()
	if err := Enable(dir); err != nil {
		t.Fatalf("enable: %v", err)
	}
	defer Disable()

	for i := 0; i < 7; i++ {
		LogEvery(3, "lines", "decoded line")
	}

	out := readLog(t, dir)
	if got := strings.Count(out, "decoded line"); got != 2 {
		t.Errorf("expected 2 sampled lines, got %d in %q", got, out)
	}
	if !strings.Contains(out, "count=6") {
		t.Errorf("expected count=6 in %q", out)
	}
}
