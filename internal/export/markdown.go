package export

import (
	"fmt"
	"strings"
)

// MarkdownExporter renders an id-ordered vocabulary table for docs.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(data ExportData) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Vocabulary: %s\n\n", data.Name)
	fmt.Fprintf(&b, "- Tokens: %d\n", len(data.Snapshot.Vocab))
	fmt.Fprintf(&b, "- Special tokens: %s\n", strings.Join(data.Snapshot.SpecialTokens, ", "))
	fmt.Fprintf(&b, "- Case sensitive: %v\n\n", data.Snapshot.CaseSensitive)

	b.WriteString("| ID | Token |\n")
	b.WriteString("|----|-------|\n")
	for _, tok := range tokensByID(data.Snapshot.Vocab) {
		fmt.Fprintf(&b, "| %d | `%s` |\n", data.Snapshot.Vocab[tok], tok)
	}

	return b.String(), nil
}
