/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the resource generator.
package config

// Config represents the tokenScripts configuration.
type Config struct {
	// Input is the token document path. Globs are supported because
	// Figma exports carry numbered suffixes ("design-tokens.tokens(1).json").
	Input string `yaml:"input" json:"input"`

	// Output is the resource output directory.
	Output string `yaml:"output" json:"output"`

	// Prefix is prepended to every generated resource name.
	Prefix string `yaml:"prefix" json:"prefix"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Input:  "",
		Output: ".",
		Prefix: "",
	}
}
