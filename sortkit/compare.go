// Copyright 2025 go-sortkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sortkit

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Natural returns the comparator for the natural order of E.
// For floating point types NaN sorts before every other value, matching
// cmp.Compare.
func Natural[E constraints.Ordered]() func(a, b E) int {
	return cmp.Compare[E]
}

// Reverse returns a comparator that orders elements opposite to c.
func Reverse[E any](c func(a, b E) int) func(a, b E) int {
	return func(a, b E) int {
		return c(b, a)
	}
}

// By returns a comparator that orders elements by the key extracted from each
// of them, using c to compare keys.
func By[E, K any](key func(E) K, c func(a, b K) int) func(a, b E) int {
	return func(a, b E) int {
		return c(key(a), key(b))
	}
}

// Then returns a comparator that orders by primary and falls back to
// secondary for elements primary considers equivalent.
func Then[E any](primary, secondary func(a, b E) int) func(a, b E) int {
	return func(a, b E) int {
		if r := primary(a, b); r != 0 {
			return r
		}
		return secondary(a, b)
	}
}

// Less reports whether a sorts strictly before b under c.
func Less[E any](c func(a, b E) int, a, b E) bool {
	return c(a, b) < 0
}
