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

// Package quick provides randomized quicksort and quickselect built on one
// in-place partitioning step.
//
// # Algorithm
//
// Partition takes s[lo] as the pivot and scans inward from both ends of
// [lo, hi]: the left cursor stops on an element not less than the pivot, the
// right cursor on an element not greater than it. Out-of-place pairs are
// exchanged until the cursors cross, and the pivot is then exchanged into the
// boundary position j, leaving
//
//	s[lo..j-1] <= s[j] <= s[j+1..hi]
//
// Elements equal to the pivot stop both scans, so runs of duplicates are
// split evenly rather than degrading to quadratic time.
//
// Sort partitions and recurses into both sides. It recurses into the smaller
// side and loops on the larger one, so stack usage stays O(log n) even on
// unlucky inputs. Select recurses into the side holding the requested rank
// only, finding the k-th smallest element in expected Θ(n) time.
//
// # Randomization
//
// Both Sort and Select shuffle their range once before starting, so the
// expected running time does not depend on the input order. The shuffle uses
// a *rand.Rand from pgregory.net/rand: pass WithRand for reproducible runs,
// otherwise a source is created per call by sortkit.NewRand.
//
// Quicksort is not stable and is Θ(n²) in the (exponentially unlikely) worst
// case.
package quick
