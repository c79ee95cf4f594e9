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

// Selection sorts s in ascending natural order. The sort is not stable.
func Selection[E constraints.Ordered](s []E) {
	selection(s, 0, len(s)-1, sortkit.Natural[E]())
}

// SelectionFunc sorts s in ascending order as determined by c.
func SelectionFunc[E any](s []E, c func(a, b E) int) {
	selection(s, 0, len(s)-1, c)
}

// SelectionRange sorts s[lo..hi] in ascending natural order.
func SelectionRange[E constraints.Ordered](s []E, lo, hi int) {
	sortkit.MustRange(len(s), lo, hi)
	selection(s, lo, hi, sortkit.Natural[E]())
}

// SelectionRangeFunc sorts s[lo..hi] in ascending order as determined by c.
func SelectionRangeFunc[E any](s []E, lo, hi int, c func(a, b E) int) {
	sortkit.MustRange(len(s), lo, hi)
	selection(s, lo, hi, c)
}

func selection[E any](s []E, lo, hi int, c func(a, b E) int) {
	for i := lo; i < hi; i++ {
		lowest := i
		for j := i + 1; j <= hi; j++ {
			if c(s[j], s[lowest]) < 0 {
				lowest = j
			}
		}
		s[i], s[lowest] = s[lowest], s[i]
	}
}
