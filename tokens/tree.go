/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import (
	"sort"
	"strings"
)

// Tree is the parsed design-tokens document: string keys mapping to nested
// groups or terminal token nodes. Owned by the caller; the engine only
// reads it.
type Tree map[string]any

// Node returns the nested map at the given path, or nil if any segment is
// missing or not a map.
func (t Tree) Node(path ...string) map[string]any {
	current := map[string]any(t)
	for _, segment := range path {
		next, ok := current[segment].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// ValueAt follows a path to a node and returns that node's own "value"
// field. Used for cross-bucket reference indirection.
func (t Tree) ValueAt(path []string) (any, bool) {
	node := t.Node(path...)
	if node == nil {
		return nil, false
	}
	v, ok := node["value"]
	return v, ok
}

// SectionKey returns the first top-level key (in sorted order, for
// determinism) whose lowercase text contains substr. The Figma export
// numbers its sections ("1. color modes", "3. spacing"), so sections are
// located by substring rather than exact key.
func (t Tree) SectionKey(substr string) (string, bool) {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(strings.ToLower(key), substr) {
			return key, true
		}
	}
	return "", false
}

// Section returns the top-level section whose key contains substr.
func (t Tree) Section(substr string) (map[string]any, bool) {
	key, ok := t.SectionKey(substr)
	if !ok {
		return nil, false
	}
	section, ok := t[key].(map[string]any)
	return section, ok
}
