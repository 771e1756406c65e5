package levels

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/levels.json
var defaultLevelsJSON []byte

// EmbeddedOrigin is the Origin of the built-in level pack.
const EmbeddedOrigin = "embedded"

// file is the top-level shape of a level file.
type file struct {
	Levels []Record `json:"levels" yaml:"levels"`
}

// Default returns the built-in level pack.
func Default() *Source {
	records, err := ParseJSON(defaultLevelsJSON)
	if err != nil {
		// The embedded pack is covered by tests; an empty source still plays.
		return NewSource(nil, EmbeddedOrigin)
	}
	return NewSource(records, EmbeddedOrigin)
}

// Load reads a level file. The format is chosen by extension:
// .json, .yaml or .yml.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", path, err)
	}

	records, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", path, err)
	}
	return NewSource(records, path), nil
}

// LoadOrDefault loads path, or the built-in pack when path is empty.
func LoadOrDefault(path string) (*Source, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// SupportedExtension reports whether Load understands the file extension.
func SupportedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) ([]Record, error) {
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %q", ext)
	}
}

// ParseJSON decodes either {"levels": [...]} or a bare array of records.
func ParseJSON(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
		return records, nil
	}

	var f file
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return f.Levels, nil
}

// ParseYAML decodes the same shapes as ParseJSON from YAML.
func ParseYAML(data []byte) ([]Record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var records []Record
		if err := doc.Decode(&records); err != nil {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
		return records, nil
	}

	var f file
	if err := doc.Decode(&f); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return f.Levels, nil
}
