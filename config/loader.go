/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	tsfs "github.com/HirayClay/tokenScripts/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokenscripts"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/tokenscripts.{yaml,yml,json} under rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem tsfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}

		return cfg, nil
	}

	return nil, nil
}

// ResolveInput resolves an input path that may be a glob. An existing path
// is returned as-is; otherwise the pattern is matched under rootDir and
// the first match in sorted order wins.
func ResolveInput(filesystem tsfs.FileSystem, rootDir, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("no input document configured")
	}
	if filesystem.Exists(input) {
		return input, nil
	}

	matches, err := Glob(filesystem, rootDir, input)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no input matching %q", input)
	}
	return matches[0], nil
}

// Glob matches a pattern against files under baseDir, walking through the
// filesystem abstraction. doublestar handles both simple and ** globs.
func Glob(filesystem tsfs.FileSystem, baseDir, pattern string) ([]string, error) {
	var matches []string

	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := filesystem.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				if err := walk(full); err != nil {
					return err
				}
				continue
			}

			rel := strings.TrimPrefix(full, baseDir)
			rel = strings.TrimPrefix(rel, string(filepath.Separator))
			if matched, _ := doublestar.Match(pattern, rel); matched {
				matches = append(matches, full)
			}
		}
		return nil
	}

	if err := walk(baseDir); err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
