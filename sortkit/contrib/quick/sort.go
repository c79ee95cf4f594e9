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

package quick

import (
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// Sort sorts s in ascending natural order. The sort is not stable.
func Sort[E constraints.Ordered](s []E, opts ...Option) {
	SortRangeFunc(s, 0, len(s)-1, sortkit.Natural[E](), opts...)
}

// SortFunc sorts s in ascending order as determined by c.
func SortFunc[E any](s []E, c func(a, b E) int, opts ...Option) {
	SortRangeFunc(s, 0, len(s)-1, c, opts...)
}

// SortRange sorts s[lo..hi] in ascending natural order. It panics if the
// range does not fit s.
func SortRange[E constraints.Ordered](s []E, lo, hi int, opts ...Option) {
	SortRangeFunc(s, lo, hi, sortkit.Natural[E](), opts...)
}

// SortRangeFunc sorts s[lo..hi] in ascending order as determined by c.
// Only the range is shuffled; elements outside it are not touched.
func SortRangeFunc[E any](s []E, lo, hi int, c func(a, b E) int, opts ...Option) {
	sortkit.MustRange(len(s), lo, hi)
	if hi <= lo {
		return
	}
	o := newOptions(opts)
	sortkit.ShuffleRange(s, lo, hi, o.rand)
	quicksort(s, lo, hi, c)
}

// quicksort recurses into the smaller partition and iterates on the larger.
func quicksort[E any](s []E, lo, hi int, c func(a, b E) int) {
	for hi > lo {
		j := partition(s, lo, hi, c)
		if j-lo < hi-j {
			quicksort(s, lo, j-1, c)
			lo = j + 1
		} else {
			quicksort(s, j+1, hi, c)
			hi = j - 1
		}
	}
}
