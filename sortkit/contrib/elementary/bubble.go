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

// Bubble sorts s in ascending natural order.
// It always performs len(s)-1 passes, even when s is already sorted.
func Bubble[E constraints.Ordered](s []E) {
	bubble(s, 0, len(s)-1, sortkit.Natural[E](), false)
}

// BubbleFunc sorts s in ascending order as determined by c.
func BubbleFunc[E any](s []E, c func(a, b E) int) {
	bubble(s, 0, len(s)-1, c, false)
}

// BubbleRange sorts s[lo..hi] in ascending natural order.
func BubbleRange[E constraints.Ordered](s []E, lo, hi int) {
	sortkit.MustRange(len(s), lo, hi)
	bubble(s, lo, hi, sortkit.Natural[E](), false)
}

// BubbleRangeFunc sorts s[lo..hi] in ascending order as determined by c.
func BubbleRangeFunc[E any](s []E, lo, hi int, c func(a, b E) int) {
	sortkit.MustRange(len(s), lo, hi)
	bubble(s, lo, hi, c, false)
}

// BubbleAdaptive is Bubble with an early exit once a pass makes no swaps.
func BubbleAdaptive[E constraints.Ordered](s []E) {
	bubble(s, 0, len(s)-1, sortkit.Natural[E](), true)
}

// BubbleAdaptiveFunc is BubbleFunc with an early exit once a pass makes no
// swaps.
func BubbleAdaptiveFunc[E any](s []E, c func(a, b E) int) {
	bubble(s, 0, len(s)-1, c, true)
}

func bubble[E any](s []E, lo, hi int, c func(a, b E) int, adaptive bool) {
	n := hi - lo + 1
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		// s[hi-pass+1..hi] already holds the largest elements.
		for j := lo; j < hi-pass; j++ {
			if c(s[j+1], s[j]) < 0 {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if adaptive && !swapped {
			return
		}
	}
}
