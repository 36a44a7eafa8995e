/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import "strings"

// Mode is the display-mode bucket a token belongs to.
type Mode int

const (
	// ModeBoth applies to both light and dark buckets (mode-agnostic).
	ModeBoth Mode = iota

	// ModeLight applies to the light bucket only.
	ModeLight

	// ModeDark applies to the dark bucket only.
	ModeDark
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return "both"
	}
}

// InLight reports whether tokens of this mode belong in the light bucket.
func (m Mode) InLight() bool { return m == ModeLight || m == ModeBoth }

// InDark reports whether tokens of this mode belong in the dark bucket.
func (m Mode) InDark() bool { return m == ModeDark || m == ModeBoth }

const (
	lightMarker = "light mode"
	darkMarker  = "dark mode"
)

// Markers is the structured mode tag for a path, accumulated once per
// segment during descent rather than re-scanning the joined path text at
// every leaf. Markers are matched within a segment.
type Markers struct {
	Light bool
	Dark  bool
	Gray  bool
}

// Scan returns a copy of m with markers found in the given path segment.
func (m Markers) Scan(segment string) Markers {
	s := strings.ToLower(segment)
	if strings.Contains(s, lightMarker) {
		m.Light = true
	}
	if strings.Contains(s, darkMarker) {
		m.Dark = true
	}
	if strings.Contains(s, "gray") {
		m.Gray = true
	}
	return m
}

// Mode maps the accumulated markers to a bucket. A path carrying both
// markers is treated as ModeBoth; Ambiguous reports that case separately.
func (m Markers) Mode() Mode {
	switch {
	case m.Light && !m.Dark:
		return ModeLight
	case m.Dark && !m.Light:
		return ModeDark
	default:
		return ModeBoth
	}
}

// Ambiguous reports whether the path carried both mode markers.
func (m Markers) Ambiguous() bool { return m.Light && m.Dark }

// PartitionPath classifies a full path into a mode bucket.
// Total: every path maps to exactly one of light, dark, or both.
func PartitionPath(path []string) Mode {
	var m Markers
	for _, segment := range path {
		m = m.Scan(segment)
	}
	return m.Mode()
}
