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

// Sort sorts s in ascending natural order using top-down merge sort.
// The sort is stable.
func Sort[E constraints.Ordered](s []E) {
	SortFunc(s, sortkit.Natural[E]())
}

// SortFunc sorts s in ascending order as determined by c using top-down
// merge sort. Elements that compare equal keep their original order.
func SortFunc[E any](s []E, c func(a, b E) int) {
	if len(s) < 2 {
		return
	}
	aux := make([]E, len(s))
	sortRecursive(s, aux, 0, len(s)-1, c)
}

// SortRange sorts s[lo..hi] in ascending natural order. It panics if the
// range does not fit s.
func SortRange[E constraints.Ordered](s []E, lo, hi int) {
	SortRangeFunc(s, lo, hi, sortkit.Natural[E]())
}

// SortRangeFunc sorts s[lo..hi] in ascending order as determined by c.
// Elements outside the range are neither read nor written.
func SortRangeFunc[E any](s []E, lo, hi int, c func(a, b E) int) {
	sortkit.MustRange(len(s), lo, hi)
	SortFunc(s[lo:hi+1], c)
}

func sortRecursive[E any](s, aux []E, lo, hi int, c func(a, b E) int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	sortRecursive(s, aux, lo, mid, c)
	sortRecursive(s, aux, mid+1, hi, c)
	merge(s, aux, lo, mid, hi, c)
}
