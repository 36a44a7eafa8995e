/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package serializer writes resolved token mappings as Android resource
// files: values/ and values-night/ resource XML plus one gradient shape
// drawable per gradient token.
package serializer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/HirayClay/tokenScripts/fs"
	"github.com/HirayClay/tokenScripts/walker"
)

const (
	valuesDir      = "values"
	valuesNightDir = "values-night"
	gradientsDir   = "gradients"

	primitiveColorFile = "primitive_color.xml"
	semanticColorFile  = "semantic_color.xml"
	dimensFile         = "dimens.xml"
	semanticDimensFile = "semantic_dimens.xml"

	xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"
)

// Serializer writes Android resource files for a walk result.
type Serializer struct {
	fs fs.FileSystem

	// Prefix is prepended to every resource name, underscore-joined.
	Prefix string
}

// New creates a serializer writing through the given filesystem.
func New(filesystem fs.FileSystem) *Serializer {
	return &Serializer{fs: filesystem}
}

// Write emits the full resource tree under outDir.
func (s *Serializer) Write(res *walker.Result, outDir string) error {
	files := []struct {
		dir, name string
		data      []byte
	}{
		{valuesDir, primitiveColorFile, s.ColorsXML(res.LightPrimitives)},
		{valuesNightDir, primitiveColorFile, s.ColorsXML(res.DarkPrimitives)},
		{valuesDir, semanticColorFile, s.SemanticColorsXML(res.LightSemantic)},
		{valuesNightDir, semanticColorFile, s.SemanticColorsXML(res.DarkSemantic)},
		{valuesDir, dimensFile, s.DimensXML(res.Dimensions)},
		{valuesDir, semanticDimensFile, s.SemanticDimensXML(res.SemanticDimensions)},
	}

	for _, f := range files {
		dir := filepath.Join(outDir, f.dir)
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		target := filepath.Join(dir, f.name)
		if err := s.fs.WriteFile(target, f.data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}

	return s.writeGradients(res, outDir)
}

func (s *Serializer) writeGradients(res *walker.Result, outDir string) error {
	if res.Gradients.Len() == 0 {
		return nil
	}

	dir := filepath.Join(outDir, gradientsDir)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var writeErr error
	res.Gradients.Each(func(name string, spec walker.GradientSpec) bool {
		target := filepath.Join(dir, s.resourceName(name)+".xml")
		if err := s.fs.WriteFile(target, GradientXML(spec), 0o644); err != nil {
			writeErr = fmt.Errorf("failed to write %s: %w", target, err)
			return false
		}
		return true
	})
	return writeErr
}

// ColorsXML renders a primitive color resource file. Entries are already
// ordered by name.
func (s *Serializer) ColorsXML(set *walker.Set[string]) []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString("<resources>\n")
	set.Each(func(name, value string) bool {
		fmt.Fprintf(&sb, "    <color name=\"%s\">%s</color>\n", EscapeXML(s.resourceName(name)), EscapeXML(value))
		return true
	})
	sb.WriteString("</resources>\n")
	return []byte(sb.String())
}

// SemanticColorsXML renders a semantic color resource file. Values naming
// a primitive become "@color/" references; literal values pass through.
func (s *Serializer) SemanticColorsXML(set *walker.Set[string]) []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString("<resources>\n")
	set.Each(func(name, value string) bool {
		if !strings.HasPrefix(value, "#") {
			value = "@color/" + s.resourceName(value)
		}
		fmt.Fprintf(&sb, "    <color name=\"%s\">%s</color>\n", EscapeXML(s.resourceName(name)), EscapeXML(value))
		return true
	})
	sb.WriteString("</resources>\n")
	return []byte(sb.String())
}

// DimensXML renders the dimension resource file; magnitudes are dp.
func (s *Serializer) DimensXML(set *walker.Set[int]) []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString("<resources>\n")
	set.Each(func(name string, value int) bool {
		fmt.Fprintf(&sb, "    <dimen name=\"%s\">%ddp</dimen>\n", EscapeXML(s.resourceName(name)), value)
		return true
	})
	sb.WriteString("</resources>\n")
	return []byte(sb.String())
}

// SemanticDimensXML renders dimension references as "@dimen/" resources.
func (s *Serializer) SemanticDimensXML(set *walker.Set[string]) []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString("<resources>\n")
	set.Each(func(name, ref string) bool {
		fmt.Fprintf(&sb, "    <dimen name=\"%s\">@dimen/%s</dimen>\n", EscapeXML(s.resourceName(name)), EscapeXML(s.resourceName(ref)))
		return true
	})
	sb.WriteString("</resources>\n")
	return []byte(sb.String())
}

// GradientXML renders one linear-gradient shape drawable.
func GradientXML(spec walker.GradientSpec) []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<shape xmlns:android="http://schemas.android.com/apk/res/android"` + "\n")
	sb.WriteString("    android:shape=\"rectangle\">\n")
	sb.WriteString("    <gradient\n")
	sb.WriteString("        android:type=\"linear\"\n")
	fmt.Fprintf(&sb, "        android:angle=\"%d\"\n", spec.Rotation)
	fmt.Fprintf(&sb, "        android:startColor=\"%s\"\n", EscapeXML(spec.StartColor))
	fmt.Fprintf(&sb, "        android:endColor=\"%s\" />\n", EscapeXML(spec.EndColor))
	sb.WriteString("</shape>\n")
	return []byte(sb.String())
}

func (s *Serializer) resourceName(name string) string {
	if s.Prefix == "" {
		return name
	}
	return s.Prefix + "_" + name
}

// EscapeXML escapes special XML characters.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
