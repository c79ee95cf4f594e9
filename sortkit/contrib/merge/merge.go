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

import "fmt"

// Merge stably merges the sorted runs s[lo..mid] and s[mid+1..hi] in place,
// using aux[lo..hi] as scratch space. When two elements compare equal the one
// from the left run is taken first.
//
// aux must have length at least hi+1; a shorter buffer is a programming error
// and panics. Merge reads and writes only indices in [lo, hi].
func Merge[E any](s, aux []E, lo, mid, hi int, c func(a, b E) int) {
	if len(aux) < hi+1 {
		panic(fmt.Sprintf("merge: auxiliary buffer of length %d, need %d", len(aux), hi+1))
	}
	merge(s, aux, lo, mid, hi, c)
}

func merge[E any](s, aux []E, lo, mid, hi int, c func(a, b E) int) {
	copy(aux[lo:hi+1], s[lo:hi+1])

	i, j := lo, mid+1
	k := lo
	for i <= mid && j <= hi {
		// Take from the right run only when strictly smaller.
		if c(aux[j], aux[i]) < 0 {
			s[k] = aux[j]
			j++
		} else {
			s[k] = aux[i]
			i++
		}
		k++
	}

	// At most one run has elements left; copy it over.
	k += copy(s[k:hi+1], aux[i:mid+1])
	copy(s[k:hi+1], aux[j:hi+1])
}
