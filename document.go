package kql

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a request document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the document format from a file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported document extension %q (want .json, .yml or .yaml)", filepath.Ext(path))
	}
}

// LoadRequest reads a request document from disk, picking the format from
// the file extension
func LoadRequest(path string) (*Request, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	req, err := ParseRequest(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// ParseRequest decodes a request document. YAML documents are converted
// to their JSON-compatible value tree first so both formats go through
// the same union decoding.
func ParseRequest(data []byte, format Format) (*Request, error) {
	switch format {
	case FormatJSON:
		// Keep the raw bytes.
	case FormatYAML:
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("invalid YAML document: %w", err)
		}
		jsonData, err := json.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("document is not JSON-compatible: %w", err)
		}
		data = jsonData
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid request document: %w", err)
	}
	return &req, nil
}
