package design

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse parses a design document from a byte slice. Both the bare element
// array form and the named-document wrapper form are accepted:
//
//	[{"type":"text",...}, ...]
//	{"name":"...", "elements":[{"type":"text",...}, ...]}
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil && doc.Elements != nil {
		return &doc, nil
	}

	// Legacy form: the editor exports a bare element array
	var elements []Element
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("failed to parse design document: %w", err)
	}

	return &Document{Elements: elements}, nil
}

// ParseFile parses a design document from disk
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design file: %w", err)
	}

	return Parse(data)
}

// ToJSON converts a Document to JSON bytes
func (d *Document) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// SaveToFile saves a Document to a file
func (d *Document) SaveToFile(path string) error {
	data, err := d.ToJSON()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
