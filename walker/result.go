/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package walker

import (
	"github.com/tidwall/btree"

	"github.com/HirayClay/tokenScripts/resolver"
)

// Set is an ordered-by-name mapping of canonical resource names to values.
// Later writes to an existing name overwrite (last-write-wins).
type Set[V any] struct {
	m btree.Map[string, V]
}

// Put stores a value under a canonical name, reporting whether an existing
// entry was overwritten.
func (s *Set[V]) Put(name string, value V) (replaced bool) {
	_, replaced = s.m.Set(name, value)
	return replaced
}

// Get returns the value stored under a canonical name.
func (s *Set[V]) Get(name string) (V, bool) {
	return s.m.Get(name)
}

// Len returns the number of entries.
func (s *Set[V]) Len() int {
	return s.m.Len()
}

// Each visits entries in name order. Return false from fn to stop early.
func (s *Set[V]) Each(fn func(name string, value V) bool) {
	s.m.Scan(fn)
}

// GradientSpec is the resolved descriptor for one gradient resource.
// Stop colors are "#"-prefixed with alpha stripped.
type GradientSpec struct {
	Rotation   int
	StartColor string
	EndColor   string
}

// Result holds the flat mappings produced by one walk. Ownership passes to
// the serializer; nothing here refers back into the input tree.
type Result struct {
	LightPrimitives    *Set[string]
	DarkPrimitives     *Set[string]
	LightSemantic      *Set[string]
	DarkSemantic       *Set[string]
	Dimensions         *Set[int]
	SemanticDimensions *Set[string]
	Gradients          *Set[GradientSpec]

	Diagnostics *Diagnostics
}

func newResult() *Result {
	return &Result{
		LightPrimitives:    &Set[string]{},
		DarkPrimitives:     &Set[string]{},
		LightSemantic:      &Set[string]{},
		DarkSemantic:       &Set[string]{},
		Dimensions:         &Set[int]{},
		SemanticDimensions: &Set[string]{},
		Gradients:          &Set[GradientSpec]{},
		Diagnostics:        &Diagnostics{},
	}
}

// MergedPrimitives builds the light-union-dark primitive map the semantic
// pass resolves against. Dark entries win on shared names, matching the
// merge order of the source scripts.
func (r *Result) MergedPrimitives() resolver.PrimitiveMap {
	merged := make(resolver.PrimitiveMap, r.LightPrimitives.Len()+r.DarkPrimitives.Len())
	r.LightPrimitives.Each(func(name, value string) bool {
		merged[name] = value
		return true
	})
	r.DarkPrimitives.Each(func(name, value string) bool {
		merged[name] = value
		return true
	})
	return merged
}
