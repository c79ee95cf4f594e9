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

// Package search provides binary search over slices sorted in ascending
// order. Searching never modifies the slice.
package search

import (
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// NotFound is returned when the key is not present.
const NotFound = -1

// Binary returns an index i with s[i] == key, or NotFound.
// s must be sorted in ascending natural order; the result is unspecified
// otherwise. When key occurs several times any one of its indices may be
// returned. Runs in O(log n).
func Binary[E constraints.Ordered](s []E, key E) int {
	return BinaryFunc(s, key, sortkit.Natural[E]())
}

// BinaryFunc is Binary for a slice sorted in ascending order by c, where
// c(e, key) compares an element with the key.
func BinaryFunc[E, K any](s []E, key K, c func(e E, key K) int) int {
	start, end := 0, len(s)-1
	for start <= end {
		mid := int(uint(start+end) >> 1)
		switch r := c(s[mid], key); {
		case r == 0:
			return mid
		case r > 0:
			end = mid - 1
		default:
			start = mid + 1
		}
	}
	return NotFound
}
