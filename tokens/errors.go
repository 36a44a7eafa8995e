/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import "errors"

// Sentinel errors for token resolution.
var (
	// ErrMissingPrimitives indicates the document has no primitives root.
	// This is the only condition that aborts a run.
	ErrMissingPrimitives = errors.New("primitives section not found")

	// ErrNotReference indicates a value is a literal, not a reference;
	// the caller should use the value directly.
	ErrNotReference = errors.New("value is not a reference")

	// ErrUnresolved indicates a reference matched no primitive token.
	ErrUnresolved = errors.New("unresolved token reference")

	// ErrMalformedGradient indicates a gradient node with fewer than two
	// color stops.
	ErrMalformedGradient = errors.New("gradient requires at least two stops")
)
