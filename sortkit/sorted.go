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

import "golang.org/x/exp/constraints"

// Sortedness checks. None of the algorithms call these; they exist for tests
// and for the property checker in cmd/sortkit.

// IsSorted reports whether s is in non-decreasing natural order.
func IsSorted[E constraints.Ordered](s []E) bool {
	return IsSortedFunc(s, Natural[E]())
}

// IsSortedFunc reports whether s is in non-decreasing order under c.
func IsSortedFunc[E any](s []E, c func(a, b E) int) bool {
	return IsSortedRangeFunc(s, 0, len(s)-1, c)
}

// IsSortedRangeFunc reports whether s[lo..hi] is in non-decreasing order
// under c.
func IsSortedRangeFunc[E any](s []E, lo, hi int, c func(a, b E) int) bool {
	for i := lo + 1; i <= hi; i++ {
		if c(s[i], s[i-1]) < 0 {
			return false
		}
	}
	return true
}
