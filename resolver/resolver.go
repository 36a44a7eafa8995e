/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves symbolic token references against the
// primitive color map.
//
// The source token-naming convention is not fully self-consistent (inline
// spaces, optional intermediate grouping words), so resolution is a closed,
// ordered list of pure matcher strategies tried in sequence. The first
// matching strategy wins; there is no ranking.
package resolver

import (
	"fmt"
	"strings"

	"github.com/HirayClay/tokenScripts/tokens"
)

// PrimitiveMap maps canonical primitive names to literal color values.
// Built once per run and consumed read-only.
type PrimitiveMap map[string]string

// Resolve returns the canonical primitive name a reference points at.
//
// Literal values ("#...") return tokens.ErrNotReference: the caller uses
// the value directly. References that match no strategy return
// tokens.ErrUnresolved; the caller must drop the token rather than emit a
// dangling reference.
func Resolve(ref string, primitives PrimitiveMap) (string, error) {
	trimmed := tokens.TrimBraces(ref)

	if tokens.IsLiteral(trimmed) {
		return "", tokens.ErrNotReference
	}

	// Cross-bucket references are resolved by tree indirection before
	// reaching the name-matching cascade; one that arrives here aliases a
	// semantic token that never reached a primitive.
	if tokens.IsColorModesRef(trimmed) {
		return "", fmt.Errorf("%w: %q aliases the color-modes section", tokens.ErrUnresolved, ref)
	}

	parts := splitReference(trimmed)
	for _, s := range strategies {
		if name, ok := s.match(parts, primitives); ok {
			return name, nil
		}
	}

	return "", fmt.Errorf("%w: %q", tokens.ErrUnresolved, ref)
}

// splitReference prepares reference path segments for matching: mode
// annotations stripped, grouping segments removed, spaced segments split
// apart. "blue dark.600" yields ["blue", "dark", "600"], so the two-word
// family is reachable by both the separated and fused strategies.
func splitReference(ref string) []string {
	segments := tokens.SplitRef(ref)
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case "primitives", "colors", "base":
			continue
		}
		parts = append(parts, strings.Fields(strings.ToLower(segment))...)
	}
	return parts
}
