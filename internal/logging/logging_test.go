package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "test")

	logger.Info("hidden")
	logger.Warn("shown", "key", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=7") || !strings.Contains(out, "test") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNewBadLevelDefaultsToInfo(t *testing.T) {
	logger := New(&bytes.Buffer{}, "loud", "")
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, expected info", logger.GetLevel())
	}
}

func TestToFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	closer, err := ToFile(DefaultPath, "info")
	if err != nil {
		t.Fatalf("ToFile() failed: %v", err)
	}
	log.Info("hello from test")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".arcade", "arcade.log"))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing message: %q", data)
	}
}
