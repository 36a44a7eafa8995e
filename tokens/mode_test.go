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

func TestPartitionPath(t *testing.T) {
	tests := []struct {
		name     string
		path     []string
		expected tokens.Mode
	}{
		{
			name:     "light marker",
			path:     []string{"1. color modes", "light mode", "button"},
			expected: tokens.ModeLight,
		},
		{
			name:     "dark marker",
			path:     []string{"1. color modes", "dark mode", "button"},
			expected: tokens.ModeDark,
		},
		{
			name:     "no marker",
			path:     []string{"colors", "base", "brand", "600"},
			expected: tokens.ModeBoth,
		},
		{
			name:     "both markers treated as both",
			path:     []string{"light mode", "overrides", "dark mode", "x"},
			expected: tokens.ModeBoth,
		},
		{
			name:     "marker embedded in longer segment",
			path:     []string{"Brand (light mode)", "600"},
			expected: tokens.ModeLight,
		},
		{
			name:     "case insensitive",
			path:     []string{"Dark Mode", "surface"},
			expected: tokens.ModeDark,
		},
		{
			name:     "empty path",
			path:     nil,
			expected: tokens.ModeBoth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokens.PartitionPath(tt.path); got != tt.expected {
				t.Errorf("PartitionPath(%v) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestMode_Buckets(t *testing.T) {
	if !tokens.ModeBoth.InLight() || !tokens.ModeBoth.InDark() {
		t.Error("ModeBoth must belong to both buckets")
	}
	if !tokens.ModeLight.InLight() || tokens.ModeLight.InDark() {
		t.Error("ModeLight must belong to the light bucket only")
	}
	if tokens.ModeDark.InLight() || !tokens.ModeDark.InDark() {
		t.Error("ModeDark must belong to the dark bucket only")
	}
}

func TestMarkers(t *testing.T) {
	t.Run("accumulates across segments", func(t *testing.T) {
		var m tokens.Markers
		m = m.Scan("1. color modes")
		m = m.Scan("light mode")
		if m.Mode() != tokens.ModeLight {
			t.Errorf("Mode() = %v, want light", m.Mode())
		}
		if m.Ambiguous() {
			t.Error("Ambiguous() = true, want false")
		}
	})

	t.Run("both markers is ambiguous", func(t *testing.T) {
		var m tokens.Markers
		m = m.Scan("light mode")
		m = m.Scan("dark mode")
		if m.Mode() != tokens.ModeBoth {
			t.Errorf("Mode() = %v, want both", m.Mode())
		}
		if !m.Ambiguous() {
			t.Error("Ambiguous() = false, want true")
		}
	})

	t.Run("gray family", func(t *testing.T) {
		var m tokens.Markers
		m = m.Scan("colors")
		m = m.Scan("gray")
		if !m.Gray {
			t.Error("Gray = false, want true")
		}
		if m.Mode() != tokens.ModeBoth {
			t.Errorf("Mode() = %v, want both", m.Mode())
		}
	})
}
