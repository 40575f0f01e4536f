package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// YAMLWriter marshals the report as YAML.
type YAMLWriter struct{}

func (yw *YAMLWriter) Write(w io.Writer, rep *Report) error {
	data, err := yaml.MarshalWithOptions(rep,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return fmt.Errorf("failed to marshal report yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
