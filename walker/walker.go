/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package walker drives classification, normalization, mode partitioning
// and reference resolution over a design-tokens tree, producing the flat
// resource mappings the serializer consumes.
package walker

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/HirayClay/tokenScripts/naming"
	"github.com/HirayClay/tokenScripts/resolver"
	"github.com/HirayClay/tokenScripts/tokens"
)

const (
	primitivesKey = "primitives"
	spacingKey    = "spacing"
	gradientKey   = "gradient"
)

type walker struct {
	tree  tokens.Tree
	res   *Result
	diags *Diagnostics
}

// Walk resolves a design-tokens tree into flat resource mappings.
//
// The only abort condition is a wholly absent primitives root; every other
// problem degrades to a diagnostic and partial output. Within a bucket,
// later-visited names overwrite earlier ones (visit order is sorted keys,
// so output is stable run to run).
func Walk(tree tokens.Tree) (*Result, error) {
	primitives := tree.Node(primitivesKey)
	if primitives == nil {
		return nil, fmt.Errorf("%w: document has no %q root", tokens.ErrMissingPrimitives, primitivesKey)
	}

	res := newResult()
	w := &walker{tree: tree, res: res, diags: res.Diagnostics}

	w.walkPrimitives(primitives, nil, tokens.Markers{})
	if tree.Node(primitivesKey, spacingKey) == nil {
		w.diags.Warnf(CodeMissingSection, "%q not found in primitives", spacingKey)
	}

	merged := res.MergedPrimitives()

	if key, ok := tree.SectionKey("color modes"); ok {
		if section, ok := tree[key].(map[string]any); ok {
			w.walkSemanticColors(section, key, nil, tokens.Markers{}, merged)
		}
	} else {
		w.diags.Warnf(CodeMissingSection, "color modes section not found")
	}

	w.walkSemanticSpacing()

	if gradients, ok := tree[gradientKey].(map[string]any); ok {
		w.walkGradients(gradients, nil)
	} else {
		w.diags.Warnf(CodeMissingSection, "%q section not found", gradientKey)
	}

	return res, nil
}

// walkPrimitives is the primitive pass: depth-first over the primitives
// subtree, classifying each node and recording colors, dimensions and
// gradients. The mode tag is accumulated per segment on the way down.
func (w *walker) walkPrimitives(node map[string]any, path []string, mk tokens.Markers) {
	for _, key := range slices.Sorted(maps.Keys(node)) {
		child, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		childPath := slices.Clip(append(path, key))
		childMk := mk.Scan(key)

		switch tokens.Classify(child) {
		case tokens.KindColor:
			w.addPrimitiveColor(child, childPath, childMk)
		case tokens.KindDimension:
			if v, ok := tokens.NumberValue(child); ok {
				if w.res.Dimensions.Put(naming.Dimension(childPath), v) {
					w.diags.Collision()
				}
			}
		case tokens.KindGradient:
			w.addGradient(child, childPath)
		default:
			w.walkPrimitives(child, childPath, childMk)
		}
	}
}

func (w *walker) addPrimitiveColor(node map[string]any, path []string, mk tokens.Markers) {
	value, ok := tokens.StringValue(node)
	if !ok || value == "" {
		return
	}

	if tokens.IsLiteral(value) {
		if _, err := csscolorparser.Parse(value); err != nil {
			w.diags.Warnf(CodeInvalidColor, "%s: %q is not a parseable color", strings.Join(path, "."), value)
		}
	}

	name := naming.Canonical(path)
	literal := tokens.StripAlpha(value)

	if mk.Ambiguous() {
		w.diags.Infof(CodeAmbiguousMode, "%s carries both light and dark markers", strings.Join(path, "."))
	}

	// Gray families without a mode marker are duplicated into both
	// buckets. Same outcome as the default both-mode rule, kept as an
	// explicit branch because the family was handled separately upstream.
	if mk.Gray && !mk.Light && !mk.Dark {
		w.putColor(name, literal, tokens.ModeBoth)
		return
	}
	w.putColor(name, literal, mk.Mode())
}

func (w *walker) putColor(name, literal string, mode tokens.Mode) {
	if mode.InLight() {
		if w.res.LightPrimitives.Put(name, literal) {
			w.diags.Collision()
		}
	}
	if mode.InDark() {
		if w.res.DarkPrimitives.Put(name, literal) {
			w.diags.Collision()
		}
	}
}

// walkSemanticColors is the semantic pass: every node with a string value
// is a reference, resolved against the merged primitive map and emitted
// into the mode bucket inferred from its path. Unresolvable references are
// dropped; a dangling reference is never emitted.
func (w *walker) walkSemanticColors(node map[string]any, sectionKey string, path []string, mk tokens.Markers, primitives resolver.PrimitiveMap) {
	for _, key := range slices.Sorted(maps.Keys(node)) {
		child, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		childPath := slices.Clip(append(path, key))
		childMk := mk.Scan(key)

		if value, ok := tokens.StringValue(child); ok {
			w.addSemanticColor(value, sectionKey, childPath, childMk, primitives)
			continue
		}
		w.walkSemanticColors(child, sectionKey, childPath, childMk, primitives)
	}
}

func (w *walker) addSemanticColor(ref, sectionKey string, path []string, mk tokens.Markers, primitives resolver.PrimitiveMap) {
	// A reference into the color-modes section aliases another semantic
	// token. Follow the path into the tree once and re-resolve that
	// node's own value.
	if tokens.IsColorModesRef(ref) {
		target, ok := w.lookupColorModesValue(ref, sectionKey)
		if !ok {
			w.diags.Warnf(CodeUnresolvedReference, "%s: cannot follow %q", strings.Join(path, "."), ref)
			return
		}
		ref = target
	}

	name := naming.Canonical(path)
	if mk.Ambiguous() {
		w.diags.Infof(CodeAmbiguousMode, "%s carries both light and dark markers", strings.Join(path, "."))
	}

	trimmed := tokens.TrimBraces(ref)
	if tokens.IsLiteral(trimmed) {
		// Literal semantic value: no resolution needed, use it directly.
		w.putSemantic(name, tokens.StripAlpha(trimmed), mk.Mode())
		return
	}

	resolved, err := resolver.Resolve(ref, primitives)
	if err != nil {
		w.diags.Warnf(CodeUnresolvedReference, "%s: %v", strings.Join(path, "."), err)
		return
	}
	w.putSemantic(name, resolved, mk.Mode())
}

func (w *walker) putSemantic(name, value string, mode tokens.Mode) {
	if mode.InLight() {
		if w.res.LightSemantic.Put(name, value) {
			w.diags.Collision()
		}
	}
	if mode.InDark() {
		if w.res.DarkSemantic.Put(name, value) {
			w.diags.Collision()
		}
	}
}

// lookupColorModesValue follows a color-modes reference to its target node
// and returns that node's own string value.
func (w *walker) lookupColorModesValue(ref, sectionKey string) (string, bool) {
	trimmed := tokens.StripModeAnnotations(tokens.TrimBraces(ref))
	rest, ok := strings.CutPrefix(trimmed, sectionKey+".")
	if !ok {
		return "", false
	}
	segments := append([]string{sectionKey}, strings.Split(rest, ".")...)
	value, ok := w.tree.ValueAt(segments)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// walkSemanticSpacing handles the semantic spacing section: each entry's
// value names a primitive dimension, recorded as a reference resource.
func (w *walker) walkSemanticSpacing() {
	key, ok := w.tree.SectionKey(spacingKey)
	if !ok {
		w.diags.Warnf(CodeMissingSection, "semantic spacing section not found")
		return
	}
	section, ok := w.tree[key].(map[string]any)
	if !ok {
		w.diags.Warnf(CodeMissingSection, "semantic spacing section not found")
		return
	}

	for _, name := range slices.Sorted(maps.Keys(section)) {
		child, ok := section[name].(map[string]any)
		if !ok {
			continue
		}
		value, ok := tokens.StringValue(child)
		if !ok {
			continue
		}
		ref := naming.SpacingReference(tokens.TrimBraces(value))
		if ref == "" {
			w.diags.Warnf(CodeUnresolvedReference, "%s: no spacing reference in %q", name, value)
			continue
		}
		if w.res.SemanticDimensions.Put(strings.ReplaceAll(name, "-", "_"), ref) {
			w.diags.Collision()
		}
	}
}

// walkGradients is the gradient pass over the gradient section.
func (w *walker) walkGradients(node map[string]any, path []string) {
	for _, key := range slices.Sorted(maps.Keys(node)) {
		child, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		childPath := slices.Clip(append(path, key))

		if tokens.Classify(child) == tokens.KindGradient {
			w.addGradient(child, childPath)
			continue
		}
		w.walkGradients(child, childPath)
	}
}

func (w *walker) addGradient(node map[string]any, path []string) {
	g, ok := tokens.GradientValueOf(node)
	if !ok || len(g.Stops) < 2 {
		w.diags.Warnf(CodeMalformedGradient, "%s: %v", strings.Join(path, "."), tokens.ErrMalformedGradient)
		return
	}

	parent := gradientKey
	if len(path) >= 2 {
		parent = path[len(path)-2]
	}
	name := naming.Gradient(parent, path[len(path)-1])

	spec := GradientSpec{
		Rotation:   int(g.Rotation),
		StartColor: normalizeGradientColor(g.Stops[0].Color),
		EndColor:   normalizeGradientColor(g.Stops[1].Color),
	}
	if w.res.Gradients.Put(name, spec) {
		w.diags.Collision()
	}
}

// normalizeGradientColor ensures a "#" prefix and strips any alpha channel.
func normalizeGradientColor(color string) string {
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	return tokens.StripAlpha(color)
}
