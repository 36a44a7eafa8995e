/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokens provides the raw design-token document model: node
// classification, mode partitioning, and symbolic reference parsing.
package tokens

// Kind classifies a tree node by its shape.
type Kind int

const (
	// KindGroup is a grouping node to recurse into.
	KindGroup Kind = iota

	// KindColor is a terminal color token.
	KindColor

	// KindDimension is a terminal dimension token.
	KindDimension

	// KindGradient is a terminal custom-gradient token.
	KindGradient
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindDimension:
		return "dimension"
	case KindGradient:
		return "gradient"
	default:
		return "group"
	}
}

// Classify decides whether a node is a terminal token or a group.
// Classification is pure and depends only on the node's shape, not its path.
func Classify(node map[string]any) Kind {
	typ, _ := node["type"].(string)
	_, hasValue := node["value"]
	if !hasValue {
		return KindGroup
	}
	switch typ {
	case "color":
		return KindColor
	case "dimension":
		return KindDimension
	case "custom-gradient":
		return KindGradient
	default:
		return KindGroup
	}
}

// StringValue returns the node's "value" field if it is a string.
func StringValue(node map[string]any) (string, bool) {
	v, ok := node["value"].(string)
	return v, ok
}

// NumberValue returns the node's "value" field as an integer magnitude.
// JSON numbers decode as float64; fractional dp values are truncated.
func NumberValue(node map[string]any) (int, bool) {
	switch v := node["value"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// GradientStop is a single color stop in a gradient value.
type GradientStop struct {
	Color string
}

// GradientValue is the decoded value of a custom-gradient node.
type GradientValue struct {
	Rotation float64
	Stops    []GradientStop
}

// GradientValueOf decodes the gradient descriptor from a node's "value" field.
func GradientValueOf(node map[string]any) (GradientValue, bool) {
	value, ok := node["value"].(map[string]any)
	if !ok {
		return GradientValue{}, false
	}

	var g GradientValue
	if rot, ok := value["rotation"].(float64); ok {
		g.Rotation = rot
	}

	stops, _ := value["stops"].([]any)
	for _, s := range stops {
		stop, ok := s.(map[string]any)
		if !ok {
			continue
		}
		color, _ := stop["color"].(string)
		g.Stops = append(g.Stops, GradientStop{Color: color})
	}

	return g, true
}

// StripAlpha drops the alpha channel from an 8-hex-digit color literal.
// "#RRGGBBAA" becomes "#RRGGBB"; anything else passes through unchanged.
func StripAlpha(hex string) string {
	if len(hex) == 9 && hex[0] == '#' {
		return hex[:7]
	}
	return hex
}
