// Package export renders saved vocabularies in interchange and documentation
// formats.
package export

import (
	"sort"

	"github.com/lexitok/lexitok/internal/tokenizer"
)

// ExportData is passed to every Exporter.
type ExportData struct {
	Name     string
	Snapshot tokenizer.Snapshot
}

// Exporter renders ExportData to a string in a specific format.
type Exporter interface {
	Export(data ExportData) (string, error)
}

// registry maps format names to Exporter implementations.
var registry = map[string]Exporter{
	"json":     &JSONExporter{},
	"markdown": &MarkdownExporter{},
	"tsv":      &TSVExporter{},
}

// Get returns the Exporter registered under name, and whether it was found.
func Get(name string) (Exporter, bool) {
	e, ok := registry[name]
	return e, ok
}

// ValidFormats returns the list of supported export format names.
func ValidFormats() []string {
	formats := make([]string, 0, len(registry))
	for k := range registry {
		formats = append(formats, k)
	}
	sort.Strings(formats)
	return formats
}

// tokensByID returns the vocabulary's tokens ordered by ascending id.
func tokensByID(vocab map[string]int) []string {
	tokens := make([]string, 0, len(vocab))
	for tok := range vocab {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return vocab[tokens[i]] < vocab[tokens[j]]
	})
	return tokens
}
