package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ReadJSON decodes the JSON document at path into a value of type T.
func ReadJSON[T any](path string) (T, error) {
	var v T
	data, err := readFile(path)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to parse JSON %s: %w", path, err)
	}
	return v, nil
}

// WriteJSON encodes v as two-space indented JSON and writes it to path,
// creating parent directories as needed. HTML characters are not escaped and
// no trailing newline is added.
func WriteJSON(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// MarshalJSON renders v the way WriteJSON stores it.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
