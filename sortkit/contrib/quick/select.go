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
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// Select returns the element of rank k in natural order: the value s[k]
// would hold if s were sorted. See SelectFunc.
func Select[E constraints.Ordered](s []E, k int, opts ...Option) (E, error) {
	return SelectFunc(s, k, sortkit.Natural[E](), opts...)
}

// SelectFunc returns the element of rank k under c without fully sorting s.
//
// s is reordered as a side effect: on success s[k] holds the result,
// s[0..k-1] <= s[k] and s[k+1..] >= s[k]. If k is outside [0, len(s)) the
// returned error wraps sortkit.ErrRankOutOfRange and s is left unchanged.
func SelectFunc[E any](s []E, k int, c func(a, b E) int, opts ...Option) (E, error) {
	if k < 0 || k >= len(s) {
		var zero E
		return zero, errors.Wrapf(sortkit.ErrRankOutOfRange, "rank %d, length %d", k, len(s))
	}

	o := newOptions(opts)
	sortkit.Shuffle(s, o.rand)

	lo, hi := 0, len(s)-1
	for hi > lo {
		i := partition(s, lo, hi, c)
		switch {
		case i > k:
			hi = i - 1
		case i < k:
			lo = i + 1
		default:
			return s[i], nil
		}
	}
	return s[lo], nil
}
