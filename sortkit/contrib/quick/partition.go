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

import "github.com/ajroetker/go-sortkit/sortkit"

// Partition rearranges s[lo..hi] around the pivot s[lo] and returns the
// pivot's final index j, such that s[lo..j-1] <= s[j] <= s[j+1..hi] under c.
// Elements outside [lo, hi] are not examined. The range must be non-empty;
// Partition panics otherwise.
func Partition[E any](s []E, lo, hi int, c func(a, b E) int) int {
	sortkit.MustRange(len(s), lo, hi)
	if hi < lo {
		panic("quick: Partition of an empty range")
	}
	return partition(s, lo, hi, c)
}

func partition[E any](s []E, lo, hi int, c func(a, b E) int) int {
	v := s[lo]
	i, j := lo, hi+1
	for {
		i++
		for i < hi && c(s[i], v) < 0 {
			i++
		}

		// s[lo] == v stops this scan, so j never passes lo.
		j--
		for c(v, s[j]) < 0 {
			j--
		}

		if i >= j {
			break
		}
		s[i], s[j] = s[j], s[i]
	}
	s[lo], s[j] = s[j], s[lo]
	return j
}
