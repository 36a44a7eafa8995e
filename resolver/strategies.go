/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

// strategy is a pure matcher over prepared reference segments. Each
// strategy either names a primitive present in the map or passes.
type strategy struct {
	name  string
	match func(parts []string, primitives PrimitiveMap) (string, bool)
}

// strategies is the closed cascade, tried in order. Deterministic: first
// match wins.
var strategies = []strategy{
	{name: "last2", match: matchLastTwo},
	{name: "last3", match: matchLastThree},
	{name: "fused3", match: matchFusedThree},
	{name: "numericPair", match: matchNumericPair},
}

// matchLastTwo joins the last two segments: "brand.600" -> "brand_600".
func matchLastTwo(parts []string, primitives PrimitiveMap) (string, bool) {
	if len(parts) < 2 {
		return "", false
	}
	name := parts[len(parts)-2] + "_" + parts[len(parts)-1]
	_, ok := primitives[name]
	return name, ok
}

// matchLastThree joins the last three segments, covering two-word family
// names: "blue dark.600" -> "blue_dark_600".
func matchLastThree(parts []string, primitives PrimitiveMap) (string, bool) {
	if len(parts) < 3 {
		return "", false
	}
	name := parts[len(parts)-3] + "_" + parts[len(parts)-2] + "_" + parts[len(parts)-1]
	_, ok := primitives[name]
	return name, ok
}

// matchFusedThree concatenates the two family segments without a
// separator, tolerating inconsistent source spacing:
// "blue dark.600" -> "bluedark_600".
func matchFusedThree(parts []string, primitives PrimitiveMap) (string, bool) {
	if len(parts) < 3 {
		return "", false
	}
	name := parts[len(parts)-3] + parts[len(parts)-2] + "_" + parts[len(parts)-1]
	_, ok := primitives[name]
	return name, ok
}

// matchNumericPair pairs the first purely numeric segment with its
// immediately preceding segment.
func matchNumericPair(parts []string, primitives PrimitiveMap) (string, bool) {
	for i, part := range parts {
		if i == 0 || !isDigits(part) {
			continue
		}
		name := parts[i-1] + "_" + part
		if _, ok := primitives[name]; ok {
			return name, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
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
