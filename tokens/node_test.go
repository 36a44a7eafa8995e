/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens_test

import (
	"testing"

	"github.com/HirayClay/tokenScripts/tokens"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		node     map[string]any
		expected tokens.Kind
	}{
		{
			name:     "color node",
			node:     map[string]any{"type": "color", "value": "#112233"},
			expected: tokens.KindColor,
		},
		{
			name:     "dimension node",
			node:     map[string]any{"type": "dimension", "value": float64(24)},
			expected: tokens.KindDimension,
		},
		{
			name: "gradient node",
			node: map[string]any{
				"type": "custom-gradient",
				"value": map[string]any{
					"rotation": float64(90),
					"stops":    []any{},
				},
			},
			expected: tokens.KindGradient,
		},
		{
			name:     "color type without value is a group",
			node:     map[string]any{"type": "color"},
			expected: tokens.KindGroup,
		},
		{
			name:     "unknown type is a group",
			node:     map[string]any{"type": "effect", "value": "x"},
			expected: tokens.KindGroup,
		},
		{
			name: "plain nesting is a group",
			node: map[string]any{
				"brand": map[string]any{"type": "color", "value": "#112233"},
			},
			expected: tokens.KindGroup,
		},
		{
			name:     "empty node is a group",
			node:     map[string]any{},
			expected: tokens.KindGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokens.Classify(tt.node); got != tt.expected {
				t.Errorf("Classify() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStripAlpha(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "8-digit literal loses alpha", in: "#112233FF", expected: "#112233"},
		{name: "6-digit literal unchanged", in: "#112233", expected: "#112233"},
		{name: "3-digit literal unchanged", in: "#123", expected: "#123"},
		{name: "reference unchanged", in: "{brand.600}", expected: "{brand.600}"},
		{name: "nine chars without hash unchanged", in: "112233FF0", expected: "112233FF0"},
		{name: "empty string unchanged", in: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokens.StripAlpha(tt.in); got != tt.expected {
				t.Errorf("StripAlpha(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestGradientValueOf(t *testing.T) {
	node := map[string]any{
		"type": "custom-gradient",
		"value": map[string]any{
			"rotation": float64(90),
			"stops": []any{
				map[string]any{"color": "#AABBCC", "position": float64(0)},
				map[string]any{"color": "#112233", "position": float64(1)},
			},
		},
	}

	g, ok := tokens.GradientValueOf(node)
	if !ok {
		t.Fatal("expected gradient value")
	}
	if g.Rotation != 90 {
		t.Errorf("Rotation = %v, want 90", g.Rotation)
	}
	if len(g.Stops) != 2 {
		t.Fatalf("len(Stops) = %d, want 2", len(g.Stops))
	}
	if g.Stops[0].Color != "#AABBCC" || g.Stops[1].Color != "#112233" {
		t.Errorf("stops = %v, want #AABBCC, #112233", g.Stops)
	}

	t.Run("non-map value", func(t *testing.T) {
		if _, ok := tokens.GradientValueOf(map[string]any{"value": "#112233"}); ok {
			t.Error("expected no gradient value for string value")
		}
	})
}

func TestNumberValue(t *testing.T) {
	if v, ok := tokens.NumberValue(map[string]any{"value": float64(24)}); !ok || v != 24 {
		t.Errorf("NumberValue = %d, %v; want 24, true", v, ok)
	}
	if _, ok := tokens.NumberValue(map[string]any{"value": "24"}); ok {
		t.Error("expected false for string value")
	}
}
