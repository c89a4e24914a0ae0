package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lexitok/lexitok/internal/tokenizer"
)

func sampleData(t *testing.T) ExportData {
	t.Helper()
	tok := tokenizer.New(tokenizer.Options{})
	tok.BuildFromText("hello world!")
	return ExportData{Name: "default", Snapshot: tok.Snapshot()}
}

func TestGet(t *testing.T) {
	for _, name := range []string{"json", "markdown", "tsv"} {
		if _, ok := Get(name); !ok {
			t.Errorf("format %q not registered", name)
		}
	}
	if _, ok := Get("xml"); ok {
		t.Error("unexpected format registered")
	}
}

func TestValidFormats(t *testing.T) {
	formats := ValidFormats()
	if len(formats) != 3 {
		t.Errorf("got %d formats, want 3", len(formats))
	}
	// Sorted for stable help output.
	for i := 1; i < len(formats); i++ {
		if formats[i-1] > formats[i] {
			t.Errorf("formats not sorted: %v", formats)
		}
	}
}

func TestJSONExporter_RoundTrips(t *testing.T) {
	data := sampleData(t)
	e, _ := Get("json")

	out, err := e.Export(data)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var snap tokenizer.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not a valid snapshot: %v", err)
	}
	restored := tokenizer.FromSnapshot(snap)
	if id, ok := restored.TokenID("hello"); !ok || id != 4 {
		t.Errorf("restored id of 'hello' = %d, %v; want 4", id, ok)
	}
	if len(snap.SpecialTokens) != 4 {
		t.Errorf("special tokens = %v", snap.SpecialTokens)
	}
}

func TestMarkdownExporter(t *testing.T) {
	data := sampleData(t)
	e, _ := Get("markdown")

	out, err := e.Export(data)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(out, "# Vocabulary: default") {
		t.Error("missing heading")
	}
	if !strings.Contains(out, "| 4 | `hello` |") {
		t.Errorf("missing table row:\n%s", out)
	}
	// Rows are id-ordered: <PAD> first.
	rows := strings.Index(out, "| 0 | `<PAD>` |")
	if rows < 0 || rows > strings.Index(out, "| 4 | `hello` |") {
		t.Errorf("rows not ordered by id:\n%s", out)
	}
}

func TestTSVExporter(t *testing.T) {
	data := sampleData(t)
	e, _ := Get("tsv")

	out, err := e.Export(data)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if lines[0] != "<PAD>\t0" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[4] != "hello\t4" {
		t.Errorf("fifth line = %q", lines[4])
	}
}
