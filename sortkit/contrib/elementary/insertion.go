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

package elementary

import (
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// Insertion sorts s in ascending natural order. The sort is stable.
func Insertion[E constraints.Ordered](s []E) {
	insertion(s, 0, len(s)-1, sortkit.Natural[E]())
}

// InsertionFunc sorts s in ascending order as determined by c, keeping
// equivalent elements in their original order.
func InsertionFunc[E any](s []E, c func(a, b E) int) {
	insertion(s, 0, len(s)-1, c)
}

// InsertionRange sorts s[lo..hi] in ascending natural order.
func InsertionRange[E constraints.Ordered](s []E, lo, hi int) {
	sortkit.MustRange(len(s), lo, hi)
	insertion(s, lo, hi, sortkit.Natural[E]())
}

// InsertionRangeFunc sorts s[lo..hi] in ascending order as determined by c.
func InsertionRangeFunc[E any](s []E, lo, hi int, c func(a, b E) int) {
	sortkit.MustRange(len(s), lo, hi)
	insertion(s, lo, hi, c)
}

// insertion shifts each element left through the sorted prefix s[lo..i-1]
// while its predecessor compares strictly greater.
func insertion[E any](s []E, lo, hi int, c func(a, b E) int) {
	for i := lo + 1; i <= hi; i++ {
		key := s[i]
		j := i - 1
		for j >= lo && c(key, s[j]) < 0 {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// IndexSort returns the permutation p such that s[p[0]], s[p[1]], ...,
// s[p[n-1]] is in ascending natural order. s is not modified. Indices of
// equal elements stay in increasing order.
func IndexSort[E constraints.Ordered](s []E) []int {
	return IndexSortFunc(s, sortkit.Natural[E]())
}

// IndexSortFunc is IndexSort with the order determined by c.
func IndexSortFunc[E any](s []E, c func(a, b E) int) []int {
	index := make([]int, len(s))
	for i := range index {
		index[i] = i
	}
	insertion(index, 0, len(index)-1, func(a, b int) int {
		return c(s[a], s[b])
	})
	return index
}
