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

import (
	"os"
	"strconv"
	"strings"

	"pgregory.net/rand"
)

// SeedEnvVar names the environment variable read by SeedEnv.
const SeedEnvVar = "SORTKIT_SEED"

// SeedEnv reports the seed configured through SORTKIT_SEED.
// The second result is false when the variable is unset or is not an
// unsigned integer.
func SeedEnv() (uint64, bool) {
	val := strings.TrimSpace(os.Getenv(SeedEnvVar))
	if val == "" {
		return 0, false
	}
	seed, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

// NewRand returns a fresh random source for a single call. It is seeded from
// SORTKIT_SEED when set, and randomly otherwise.
func NewRand() *rand.Rand {
	if seed, ok := SeedEnv(); ok {
		return rand.New(seed)
	}
	return rand.New()
}

// Shuffle applies a uniform random permutation to s (Fisher–Yates).
func Shuffle[E any](s []E, r *rand.Rand) {
	ShuffleRange(s, 0, len(s)-1, r)
}

// ShuffleRange applies a uniform random permutation to s[lo..hi], leaving the
// rest of s untouched. The range must be valid (see CheckRange).
func ShuffleRange[E any](s []E, lo, hi int, r *rand.Rand) {
	for i := hi; i > lo; i-- {
		j := lo + r.Intn(i-lo+1)
		s[i], s[j] = s[j], s[i]
	}
}
