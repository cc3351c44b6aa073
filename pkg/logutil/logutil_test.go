package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLogger_DiscardsByDefault(t *testing.T) {
	logger := GetLogger("[test] ")
	logger.Println("dropped")
	// Nothing to assert beyond not crashing; the default writer discards.
}

func TestSetOutput(t *testing.T) {
	defer SetOutput(io.Discard)

	var buf bytes.Buffer
	existing := GetLogger("[existing] ")
	SetOutput(&buf)
	existing.Println("from existing")

	// Loggers registered after SetOutput pick up the same writer.
	late := GetLogger("[late] ")
	late.Println("from late")

	s := buf.String()
	if !strings.Contains(s, "[existing] ") || !strings.Contains(s, "from existing") {
		t.Errorf("existing logger output missing, got %q", s)
	}
	if !strings.Contains(s, "[late] ") || !strings.Contains(s, "from late") {
		t.Errorf("late logger output missing, got %q", s)
	}
}

func TestSetOutputFile(t *testing.T) {
	defer SetOutputFile("")

	fname := filepath.Join(t.TempDir(), "log")
	logger := GetLogger("[file] ")
	if err := SetOutputFile(fname); err != nil {
		t.Fatalf("SetOutputFile(%q) -> %v", fname, err)
	}
	logger.Println("to file")
	if err := SetOutputFile(""); err != nil {
		t.Fatalf("SetOutputFile(\"\") -> %v", err)
	}
	logger.Println("dropped")

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("ReadFile(%q) -> %v", fname, err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Errorf("log file missing entry, got %q", content)
	}
	if strings.Contains(string(content), "dropped") {
		t.Errorf("log file contains entry written after reverting to discard")
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	if err == nil {
		t.Errorf("SetOutputFile to a non-existent directory did not error")
	}
}
