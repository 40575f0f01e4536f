package report

import (
	"encoding/json"
	"io"
)

// JSONWriter marshals the report with its rows and summary, one document per
// reconciled pair.
type JSONWriter struct {
	Indent string
}

func (jw *JSONWriter) Write(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	if jw.Indent != "" {
		enc.SetIndent("", jw.Indent)
	}
	return enc.Encode(rep)
}
