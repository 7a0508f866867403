package siptrack

// This file persists the scheme-mapping store: a human-readable JSON
// document of {source name: scheme code}, loaded whole at Resolver
// construction and rewritten whole on each new mapping.

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DecodeMappings reads a mapping document.
func DecodeMappings(r io.Reader) (map[string]string, error) {
	mappings := make(map[string]string)
	dec := json.NewDecoder(r)
	if err := dec.Decode(&mappings); err != nil {
		return nil, fmt.Errorf("load error: cannot parse mapping store: %w", err)
	}
	return mappings, nil
}

// EncodeMappings writes a mapping document, indented for hand editing.
func EncodeMappings(w io.Writer, mappings map[string]string) error {
	data, err := json.MarshalIndent(mappings, "", "    ")
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal mapping store: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("persist error: cannot write mapping store: %w", err)
	}
	return nil
}

// LoadMappings reads the mapping store file. A missing file is an empty store.
func LoadMappings(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("load error: cannot open mapping store %q: %w", path, err)
	}
	defer f.Close()
	return DecodeMappings(f)
}

// SaveMappings rewrites the mapping store file in full.
func SaveMappings(path string, mappings map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist error: cannot create mapping store %q: %w", path, err)
	}
	defer f.Close()
	return EncodeMappings(f, mappings)
}
