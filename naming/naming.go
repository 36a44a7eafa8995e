/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming turns token tree paths into flat Android resource names.
//
// Design-token trees over-nest groups (category, subcategory, shade); only
// the shade-bearing leaf and, for numeric shades, its immediate parent are
// semantically distinguishing. Collisions between flattened names are
// resolved last-write-wins by the walker.
package naming

import (
	"regexp"
	"strings"
)

var (
	parenSuffixPattern = regexp.MustCompile(`\s*\([^)]*\)`)
	nonAlnumPattern    = regexp.MustCompile(`[^a-zA-Z0-9]`)
	underscoreRuns     = regexp.MustCompile(`_+`)
)

// cleanSegment normalizes a single path segment: parenthesized suffixes
// stripped, non-alphanumerics to underscores, runs collapsed, trimmed,
// lowercased. Returns "" for segments with no alphanumeric content.
func cleanSegment(segment string) string {
	s := parenSuffixPattern.ReplaceAllString(segment, "")
	s = nonAlnumPattern.ReplaceAllString(s, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	return strings.ToLower(s)
}

// isNumeric reports whether s is non-empty and purely digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Canonical derives the flat resource name for a token path.
//
// Leading "colors", "base" and "component" grouping segments are stripped
// (each once, in that order; "component colors" sheds a second "colors").
// A purely numeric leaf keeps its parent attached ("brand_600"); otherwise
// the deepest leaf name wins.
func Canonical(path []string) string {
	parts := make([]string, 0, len(path))
	for _, segment := range path {
		if cleaned := cleanSegment(segment); cleaned != "" {
			parts = append(parts, cleaned)
		}
	}

	if len(parts) > 0 && parts[0] == "colors" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[0] == "base" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[0] == "component" {
		parts = parts[1:]
	}
	if len(parts) > 1 && parts[0] == "colors" {
		parts = parts[1:]
	}

	if len(parts) > 1 && isNumeric(parts[len(parts)-1]) {
		return parts[len(parts)-2] + "_" + parts[len(parts)-1]
	}
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return strings.Join(parts, "_")
}

// Dimension derives the resource name for a spacing dimension path:
// parent plus leaf, where the leaf is truncated at its first space and
// both keep alphanumerics only.
func Dimension(path []string) string {
	if len(path) == 0 {
		return "unknown"
	}

	leaf := path[len(path)-1]
	if i := strings.IndexByte(leaf, ' '); i >= 0 {
		leaf = leaf[:i]
	}
	leaf = nonAlnumPattern.ReplaceAllString(leaf, "")

	if len(path) > 1 {
		parent := nonAlnumPattern.ReplaceAllString(path[len(path)-2], "")
		return parent + "_" + leaf
	}
	return leaf
}

// Gradient derives the resource name for a gradient node. Node names of
// the form "600 -> 500 (90deg)" keep the two stop labels attached to the
// parent ("hero_600_500"); anything else is cleaned and joined.
func Gradient(parent, node string) string {
	if strings.Contains(node, " -> ") && strings.Contains(node, "(") {
		parts := strings.SplitN(node, " -> ", 2)
		if len(parts) == 2 {
			start := strings.TrimSpace(parts[0])
			end := strings.TrimSpace(strings.SplitN(parts[1], "(", 2)[0])
			return parent + "_" + start + "_" + end
		}
	}

	parentClean := strings.Trim(underscoreRuns.ReplaceAllString(
		nonAlnumPattern.ReplaceAllString(parent, "_"), "_"), "_")
	nodeClean := strings.Trim(underscoreRuns.ReplaceAllString(
		nonAlnumPattern.ReplaceAllString(node, "_"), "_"), "_")
	return parentClean + "_" + nodeClean
}

// SpacingReference extracts the dimension name referenced by a semantic
// spacing value such as "primitives.mode 1.spacing.0 (0px)", yielding
// "spacing_0". The first dot after "spacing" becomes an underscore and any
// further dots are dropped ("spacing.large.value (24px)" yields
// "spacing_largevalue"). Returns "" when the value has no recognizable
// spacing reference.
func SpacingReference(raw string) string {
	lastBracket := strings.LastIndexByte(raw, '(')
	if lastBracket < 0 {
		return ""
	}

	spacingPos := strings.Index(raw, "spacing")
	if spacingPos < 0 {
		return ""
	}

	dotBefore := strings.LastIndexByte(raw[:spacingPos], '.')
	if dotBefore < 0 || lastBracket <= dotBefore {
		return ""
	}

	content := strings.TrimSpace(raw[dotBefore+1 : lastBracket])

	spacingIdx := strings.Index(content, "spacing")
	if spacingIdx < 0 {
		return content
	}
	after := content[spacingIdx+len("spacing"):]
	if after == "" {
		return content
	}

	if firstDot := strings.IndexByte(after, '.'); firstDot >= 0 {
		after = after[:firstDot] + "_" + strings.ReplaceAll(after[firstDot+1:], ".", "")
	}
	return "spacing" + after
}
