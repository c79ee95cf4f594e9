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

package merge

import (
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// SortBottomUp sorts s in ascending natural order using bottom-up merge sort.
// It produces the same result as Sort without recursing.
func SortBottomUp[E constraints.Ordered](s []E) {
	SortBottomUpFunc(s, sortkit.Natural[E]())
}

// SortBottomUpFunc sorts s in ascending order as determined by c using
// bottom-up merge sort. The sort is stable.
func SortBottomUpFunc[E any](s []E, c func(a, b E) int) {
	n := len(s)
	if n < 2 {
		return
	}
	aux := make([]E, n)
	for width := 1; width < n; width *= 2 {
		// Blocks with lo+width >= n have no second run and are already sorted.
		for lo := 0; lo < n-width; lo += 2 * width {
			mid := lo + width - 1
			hi := min(lo+2*width-1, n-1)
			merge(s, aux, lo, mid, hi, c)
		}
	}
}

// SortBottomUpRange sorts s[lo..hi] in ascending natural order. It panics if
// the range does not fit s.
func SortBottomUpRange[E constraints.Ordered](s []E, lo, hi int) {
	SortBottomUpRangeFunc(s, lo, hi, sortkit.Natural[E]())
}

// SortBottomUpRangeFunc sorts s[lo..hi] in ascending order as determined by c.
func SortBottomUpRangeFunc[E any](s []E, lo, hi int, c func(a, b E) int) {
	sortkit.MustRange(len(s), lo, hi)
	SortBottomUpFunc(s[lo:hi+1], c)
}
