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

import "github.com/pkg/errors"

// Swap exchanges s[i] and s[j].
func Swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// At returns s[i], or an error wrapping ErrIndexOutOfRange.
func At[E any](s []E, i int) (E, error) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(s))
	}
	return s[i], nil
}

// Set stores v at s[i], or returns an error wrapping ErrIndexOutOfRange and
// leaves s untouched.
func Set[E any](s []E, i int, v E) error {
	if i < 0 || i >= len(s) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(s))
	}
	s[i] = v
	return nil
}

// CheckRange validates the inclusive range [lo, hi] against a sequence of
// length n. The range is valid when 0 <= lo, hi < n and lo <= hi+1; hi == lo-1
// denotes the empty range starting at lo.
func CheckRange(n, lo, hi int) error {
	if lo < 0 || hi >= n || lo > hi+1 {
		return errors.Wrapf(ErrInvalidRange, "[%d, %d] for length %d", lo, hi, n)
	}
	return nil
}

// MustRange panics if [lo, hi] is not a valid range over a sequence of
// length n. Algorithms use it for their sub-range entry points, where a bad
// range is a programming error just like a bad slice expression.
func MustRange(n, lo, hi int) {
	if err := CheckRange(n, lo, hi); err != nil {
		panic("sortkit: " + err.Error())
	}
}
