package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/edo-compare/internal/model"
)

// writeStructured encodes v as JSON or YAML. It is used by every command
// whose text output is a hand-formatted table.
func writeStructured(w io.Writer, format model.OutputFormat, v interface{}) error {
	switch format {
	case model.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}
