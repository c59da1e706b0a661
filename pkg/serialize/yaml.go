package serialize

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ReadYAML decodes the YAML document at path into a value of type T.
func ReadYAML[T any](path string) (T, error) {
	var v T
	data, err := readFile(path)
	if err != nil {
		return v, err
	}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}
	return v, nil
}

// WriteYAML encodes v as two-space indented YAML and writes it to path.
func WriteYAML(path string, v any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return writeFile(path, buf.Bytes())
}
