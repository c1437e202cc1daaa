// Package output serializes chart documents for the renderer.
package output

import (
	"encoding/json"
	"os"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteFile serializes v into path, followed by a newline.
func WriteFile(path string, v any, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
