package schemes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schemehub/schemehub/internal/domain"
)

// Loader reads and parses the scheme catalog file.
//
// The canonical format is a JSON array of scheme records (the same document
// the web client consumes); a YAML rendition of the same array is accepted
// for hand-maintained files.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given catalog file.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads, parses and validates the catalog file, returning records in
// file order.
func (l *Loader) Load() ([]*domain.Scheme, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schemes file: %w", err)
	}

	var records []*domain.Scheme
	switch strings.ToLower(filepath.Ext(l.filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse schemes yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse schemes json: %w", err)
		}
	}

	if err := Validate(records); err != nil {
		return nil, err
	}

	return records, nil
}
