package tee

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig(dir string) Config {
	return Config{
		Enabled:     true,
		MaxFiles:    3,
		MaxFileSize: 1 << 20,
		Dir:         dir,
	}
}

func TestOpenWrite(t *testing.T) {
	dir := t.TempDir()

	f, err := Open(testConfig(dir), "carbonyl-runtime")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Write([]byte("renderer started\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if !strings.HasSuffix(f.Path(), "-carbonyl-runtime.log") {
		t.Errorf("unexpected path: %q", f.Path())
	}
	data, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "renderer started\n" {
		t.Errorf("content = %q", data)
	}
}

func TestOpenDisabled(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Enabled = false

	f, err := Open(cfg, "runtime")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != nil {
		t.Error("expected nil file when disabled")
	}
}

func TestWriteTruncates(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.MaxFileSize = 10

	f, err := Open(cfg, "runtime")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	n, err := f.Write([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != 16 {
		t.Errorf("n = %d, want 16", n)
	}
	n, err = f.Write([]byte("more"))
	if err != nil || n != 4 {
		t.Errorf("write past limit: n=%d err=%v", n, err)
	}
	f.Close()

	data, _ := os.ReadFile(f.Path())
	if string(data) != "0123456789" {
		t.Errorf("content = %q", data)
	}
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"carbonyl-runtime": "carbonyl-runtime",
		"a b/c":            "a-b-c",
		"":                 "log",
	}
	for in, want := range tests {
		if got := sanitize(in); got != want {
			t.Errorf("sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRotateFiles(t *testing.T) {
	dir := t.TempDir()

	// Create 5 log files
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, strings.Repeat("a", i+1)+".log")
		_ = os.WriteFile(path, []byte("data"), 0644)
	}

	rotateFiles(dir, 3)

	entries, _ := os.ReadDir(dir)
	logCount := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".log") {
			logCount++
		}
	}
	if logCount != 3 {
		t.Errorf("expected 3 files after rotation, got %d", logCount)
	}
}

func TestCloseRotates(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.MaxFiles = 2

	for i := 0; i < 4; i++ {
		f, err := Open(cfg, "runtime")
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		f.Close()
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("expected 2 files, got %d", len(entries))
	}
}
