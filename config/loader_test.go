/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"github.com/HirayClay/tokenScripts/config"
	"github.com/HirayClay/tokenScripts/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("proj/.config/tokenscripts.yaml", `
input: "design-tokens*.json"
output: "app/src/main/res"
prefix: "ds"
`, 0o644)

	cfg, err := config.Load(filesystem, "proj")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config")
	}
	if cfg.Input != "design-tokens*.json" {
		t.Errorf("Input = %q", cfg.Input)
	}
	if cfg.Output != "app/src/main/res" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Prefix != "ds" {
		t.Errorf("Prefix = %q", cfg.Prefix)
	}
}

func TestLoad_JSON(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("proj/.config/tokenscripts.json", `{"input": "tokens.json", "output": "res"}`, 0o644)

	cfg, err := config.Load(filesystem, "proj")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg == nil || cfg.Input != "tokens.json" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_YAMLWinsOverJSON(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("proj/.config/tokenscripts.yaml", `input: "from-yaml.json"`, 0o644)
	filesystem.AddFile("proj/.config/tokenscripts.json", `{"input": "from-json.json"}`, 0o644)

	cfg, err := config.Load(filesystem, "proj")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input != "from-yaml.json" {
		t.Errorf("Input = %q, want the yaml value", cfg.Input)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), "proj")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestResolveInput(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("proj/design-tokens.tokens.json", `{}`, 0o644)
	filesystem.AddFile("proj/design-tokens.tokens(1).json", `{}`, 0o644)
	filesystem.AddFile("proj/readme.md", `#`, 0o644)

	t.Run("existing path returned as-is", func(t *testing.T) {
		got, err := config.ResolveInput(filesystem, "proj", "proj/readme.md")
		if err != nil {
			t.Fatal(err)
		}
		if got != "proj/readme.md" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("glob picks first sorted match", func(t *testing.T) {
		got, err := config.ResolveInput(filesystem, "proj", "design-tokens*.json")
		if err != nil {
			t.Fatal(err)
		}
		if got != "proj/design-tokens.tokens(1).json" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, err := config.ResolveInput(filesystem, "proj", "*.yaml"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if _, err := config.ResolveInput(filesystem, "proj", ""); err == nil {
			t.Error("expected error")
		}
	})
}

func TestGlob_Recursive(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("proj/a/tokens.json", `{}`, 0o644)
	filesystem.AddFile("proj/b/c/tokens.json", `{}`, 0o644)
	filesystem.AddFile("proj/tokens.yaml", ``, 0o644)

	matches, err := config.Glob(filesystem, "proj", "**/*.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("matches = %v, want 2 entries", matches)
	}
	if matches[0] != "proj/a/tokens.json" || matches[1] != "proj/b/c/tokens.json" {
		t.Errorf("matches = %v", matches)
	}
}
