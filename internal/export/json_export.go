package export

import "encoding/json"

// JSONExporter renders the snapshot structure itself. This is the sole
// interchange format: `lexitok import` accepts exactly this output.
type JSONExporter struct{}

func (e *JSONExporter) Export(data ExportData) (string, error) {
	b, err := json.MarshalIndent(data.Snapshot, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
