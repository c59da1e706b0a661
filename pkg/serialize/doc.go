// Package serialize reads and writes JSON, YAML and TOML documents on disk and
// compresses byte payloads with gzip.
//
// Writers create missing parent directories before writing and persist UTF-8
// text. JSON and YAML output is indented with two spaces. Readers are generic
// over the destination type; use any to decode into a schemaless tree of
// map[string]any, []any and scalars:
//
//	cfg, err := serialize.ReadJSON[map[string]any]("state/settings.json")
//
// Parse failures are returned, never recovered, and keep the decoder's typed
// error reachable through errors.As.
package serialize
