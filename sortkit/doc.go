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

// Package sortkit holds the pieces shared by every algorithm in go-sortkit:
// comparators, index-based exchange primitives over slices, sortedness checks
// and the Fisher–Yates shuffle used by the partition-based algorithms.
//
// The algorithms themselves live in the contrib subpackages:
//   - contrib/elementary: bubble, insertion and selection sort
//   - contrib/merge: recursive and bottom-up merge sort
//   - contrib/quick: randomized quicksort and quickselect
//   - contrib/search: binary search
//
// # Comparators
//
// Every algorithm comes in two flavours. The plain form orders elements of a
// constraints.Ordered type by their natural order; the Func form takes a
// comparator with the same convention as slices.SortFunc:
//
//	cmp(a, b) < 0   a sorts before b
//	cmp(a, b) == 0  a and b are equivalent
//	cmp(a, b) > 0   a sorts after b
//
// Both forms run the same generic code; the plain form simply passes
// Natural[E]().
//
// # Randomness
//
// Nothing in go-sortkit keeps process-wide random state. Shuffles draw from a
// *rand.Rand (pgregory.net/rand) that is either supplied by the caller or
// created for the call by NewRand. Setting SORTKIT_SEED to an unsigned integer
// makes NewRand deterministic, which is handy when reproducing a run.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-sortkit/sortkit"
//	    "github.com/ajroetker/go-sortkit/sortkit/contrib/merge"
//	)
//
//	type person struct {
//	    name string
//	    age  int
//	}
//
//	func ByAge(people []person) {
//	    merge.SortFunc(people, sortkit.By(func(p person) int { return p.age }, sortkit.Natural[int]()))
//	}
package sortkit
