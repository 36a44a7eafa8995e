/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import (
	"regexp"
	"strings"
)

// modeAnnotationPattern matches "(light mode)" / "(dark mode)" annotations
// embedded in reference text, with any leading whitespace.
var modeAnnotationPattern = regexp.MustCompile(`\s*\((?:light|dark) mode\)`)

// IsLiteral reports whether a value is a literal color rather than a
// symbolic reference.
func IsLiteral(value string) bool {
	return strings.HasPrefix(value, "#")
}

// IsBracedRef reports whether a value is a brace-wrapped path reference.
func IsBracedRef(value string) bool {
	return strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}")
}

// TrimBraces strips one layer of surrounding braces from a reference.
func TrimBraces(ref string) string {
	if IsBracedRef(ref) {
		return ref[1 : len(ref)-1]
	}
	return ref
}

// StripModeAnnotations removes embedded "(light mode)" / "(dark mode)"
// annotations from reference text.
func StripModeAnnotations(ref string) string {
	return modeAnnotationPattern.ReplaceAllString(ref, "")
}

// SplitRef turns a reference into its path segments: braces trimmed, mode
// annotations stripped, split on dots.
func SplitRef(ref string) []string {
	ref = StripModeAnnotations(TrimBraces(ref))
	return strings.Split(ref, ".")
}

// sectionNumberPrefix matches the Figma export's section numbering
// ("1. color modes", "3. spacing").
var sectionNumberPrefix = regexp.MustCompile(`^\d+\.\s*`)

// IsColorModesRef reports whether a reference targets the semantic
// color-modes section rather than a primitive. Such references resolve by
// one indirection through the tree instead of by name matching. The
// section key itself contains a dot, so the raw head is checked rather
// than split segments.
func IsColorModesRef(ref string) bool {
	trimmed := strings.ToLower(TrimBraces(ref))
	trimmed = sectionNumberPrefix.ReplaceAllString(trimmed, "")
	return strings.HasPrefix(trimmed, "color modes")
}
