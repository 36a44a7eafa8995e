/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser parses design-token documents into a raw token tree.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/HirayClay/tokenScripts/fs"
	"github.com/HirayClay/tokenScripts/tokens"
)

// Parse parses JSON or YAML token data into a raw tree.
func Parse(data []byte) (tokens.Tree, error) {
	var raw map[string]any

	if isLikelyJSON(data) {
		// Figma exports are JSON; tolerate comments and trailing commas.
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return tokens.Tree(raw), nil
	}

	var yamlRaw any
	if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	normalized := normalizeMap(yamlRaw)
	raw, ok := normalized.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be an object")
	}
	return tokens.Tree(raw), nil
}

// ParseFile reads and parses a token document.
func ParseFile(filesystem fs.FileSystem, path string) (tokens.Tree, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return tree, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to
// map[string]any. YAML with numeric keys (like "10:") creates
// map[interface{}]interface{}, which must be normalized for our
// string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}
