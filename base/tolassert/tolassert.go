// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides assert functions for testing that allow the
// values to be within a tolerance of each other.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two values are within a default tolerance (1e-4)
// of each other.
func Equal[T float32 | float64](t *testing.T, expected, actual T, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 1e-4, msgAndArgs...)
}

// EqualTol asserts that the two values are within the given tolerance of
// each other.
func EqualTol[T float32 | float64](t *testing.T, expected, actual, tolerance T, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, float64(expected), float64(actual), float64(tolerance), msgAndArgs...)
}
