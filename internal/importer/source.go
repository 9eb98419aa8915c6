package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source provides warband bundles from some external location.
//
// Postcondition: Load returns a decoded bundle or a non-nil error; it
// performs no hardening, which belongs to Importer.
type Source interface {
	Load() (Bundle, error)
}

// FileSource loads a bundle from a JSON file on disk.
type FileSource struct {
	Path string
}

// Load reads and decodes the bundle file.
func (f FileSource) Load() (Bundle, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Bundle{}, fmt.Errorf("reading bundle file %q: %w", f.Path, err)
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("parsing bundle file %q: %w", f.Path, err)
	}
	return b, nil
}
