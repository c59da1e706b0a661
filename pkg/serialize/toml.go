package serialize

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ReadTOML decodes the TOML document at path into a value of type T.
func ReadTOML[T any](path string) (T, error) {
	var v T
	data, err := readFile(path)
	if err != nil {
		return v, err
	}
	if err := toml.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to parse TOML %s: %w", path, err)
	}
	return v, nil
}

// WriteTOML encodes v as TOML and writes it to path. The top-level value must
// be a struct or a map with string keys.
func WriteTOML(path string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return writeFile(path, data)
}
