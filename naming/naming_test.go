/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming_test

import (
	"testing"

	"github.com/HirayClay/tokenScripts/naming"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{
			name:     "numeric shade keeps its family",
			path:     []string{"colors", "base", "brand", "600"},
			expected: "brand_600",
		},
		{
			name:     "full export path",
			path:     []string{"primitives", "colors", "base", "brand", "600"},
			expected: "brand_600",
		},
		{
			name:     "non-numeric leaf wins alone",
			path:     []string{"colors", "base", "surface", "raised"},
			expected: "raised",
		},
		{
			name:     "single segment",
			path:     []string{"white"},
			expected: "white",
		},
		{
			name:     "parenthesized suffix stripped",
			path:     []string{"Brand (light mode)", "600"},
			expected: "brand_600",
		},
		{
			name:     "special characters become underscores",
			path:     []string{"colors", "blue-dark", "50"},
			expected: "blue_dark_50",
		},
		{
			name:     "component colors prefix stripped",
			path:     []string{"component", "colors", "badge", "100"},
			expected: "badge_100",
		},
		{
			name:     "empty segments dropped",
			path:     []string{"colors", "()", "gray", "25"},
			expected: "gray_25",
		},
		{
			name:     "uppercase lowered",
			path:     []string{"Colors", "Base", "Error", "500"},
			expected: "error_500",
		},
		{
			name:     "empty path",
			path:     nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := naming.Canonical(tt.path); got != tt.expected {
				t.Errorf("Canonical(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	path := []string{"primitives", "colors", "base", "brand", "600"}
	first := naming.Canonical(path)
	second := naming.Canonical(path)
	if first != second {
		t.Errorf("Canonical not stable: %q vs %q", first, second)
	}
}

func TestDimension(t *testing.T) {
	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{
			name:     "parent and leaf",
			path:     []string{"spacing", "large"},
			expected: "spacing_large",
		},
		{
			name:     "leaf truncated at first space",
			path:     []string{"spacing", "0 (0px)"},
			expected: "spacing_0",
		},
		{
			name:     "single segment",
			path:     []string{"large"},
			expected: "large",
		},
		{
			name:     "empty path",
			path:     nil,
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := naming.Dimension(tt.path); got != tt.expected {
				t.Errorf("Dimension(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestGradient(t *testing.T) {
	tests := []struct {
		name     string
		parent   string
		node     string
		expected string
	}{
		{
			name:     "arrow pattern keeps both stop labels",
			parent:   "hero",
			node:     "600 -> 500 (90deg)",
			expected: "hero_600_500",
		},
		{
			name:     "plain names cleaned and joined",
			parent:   "hero banner",
			node:     "top",
			expected: "hero_banner_top",
		},
		{
			name:     "arrow without degrees falls through to cleanup",
			parent:   "hero",
			node:     "600 -> 500",
			expected: "hero_600_500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := naming.Gradient(tt.parent, tt.node); got != tt.expected {
				t.Errorf("Gradient(%q, %q) = %q, want %q", tt.parent, tt.node, got, tt.expected)
			}
		})
	}
}

func TestSpacingReference(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "simple spacing reference",
			in:       "primitives.mode 1.spacing.0 (0px)",
			expected: "spacing_0",
		},
		{
			name:     "nested segments fused after the first",
			in:       "primitives.mode 1.spacing.large.value (24px)",
			expected: "spacing_largevalue",
		},
		{
			name:     "no bracket",
			in:       "primitives.mode 1.spacing.0",
			expected: "",
		},
		{
			name:     "no spacing segment",
			in:       "primitives.mode 1.sizing.0 (0px)",
			expected: "",
		},
		{
			name:     "no dot before spacing",
			in:       "spacing 0 (0px)",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := naming.SpacingReference(tt.in); got != tt.expected {
				t.Errorf("SpacingReference(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}
