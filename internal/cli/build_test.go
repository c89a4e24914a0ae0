package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lexitok/lexitok/internal/config"
)

func TestCollectTexts_Args(t *testing.T) {
	texts, source, err := collectTexts([]string{"hello", "world"}, nil, "", false, config.DefaultGlobal())
	if err != nil {
		t.Fatalf("collectTexts: %v", err)
	}
	if len(texts) != 1 || texts[0] != "hello world" {
		t.Errorf("texts = %v", texts)
	}
	if source != "text" {
		t.Errorf("source = %q, want text", source)
	}
}

func TestCollectTexts_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	os.WriteFile(a, []byte("first"), 0o644)
	os.WriteFile(b, []byte("second"), 0o644)

	texts, source, err := collectTexts(nil, []string{a, b}, "", false, config.DefaultGlobal())
	if err != nil {
		t.Fatalf("collectTexts: %v", err)
	}
	if len(texts) != 2 || texts[0] != "first" || texts[1] != "second" {
		t.Errorf("texts = %v", texts)
	}
	if source != "files" {
		t.Errorf("source = %q, want files", source)
	}
}

func TestCollectTexts_MissingFile(t *testing.T) {
	_, _, err := collectTexts(nil, []string{"/no/such/file.txt"}, "", false, config.DefaultGlobal())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCollectTexts_Dir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "doc.txt"), []byte("from dir"), 0o644)
	os.WriteFile(filepath.Join(dir, "code.go"), []byte("skipped"), 0o644)

	texts, source, err := collectTexts(nil, nil, dir, false, config.DefaultGlobal())
	if err != nil {
		t.Fatalf("collectTexts: %v", err)
	}
	if len(texts) != 1 || texts[0] != "from dir" {
		t.Errorf("texts = %v", texts)
	}
	if source != "dir:"+dir {
		t.Errorf("source = %q", source)
	}
}

func TestCaseLabel(t *testing.T) {
	if caseLabel(true) != "sensitive" || caseLabel(false) != "insensitive" {
		t.Error("caseLabel labels wrong")
	}
}
