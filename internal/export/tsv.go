package export

import (
	"fmt"
	"strings"
)

// TSVExporter renders `token<TAB>id` lines for spreadsheet and shell use.
type TSVExporter struct{}

func (e *TSVExporter) Export(data ExportData) (string, error) {
	var b strings.Builder
	for _, tok := range tokensByID(data.Snapshot.Vocab) {
		fmt.Fprintf(&b, "%s\t%d\n", tok, data.Snapshot.Vocab[tok])
	}
	return b.String(), nil
}
