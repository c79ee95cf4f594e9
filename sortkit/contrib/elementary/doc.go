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

// Package elementary provides the quadratic baseline sorts: bubble, insertion
// and selection sort.
//
// They are straight nested loops with O(1) extra space and are mostly useful
// as reference points when measuring the merge and partition engines, or for
// very small inputs. Every sort works on the whole slice or on an inclusive
// sub-range [lo, hi], and with either the natural order or a comparator.
//
// # Properties
//
//   - Bubble: Θ(n²) comparisons. Bubble always runs all n-1 passes, so its
//     best case is Θ(n²) as well; BubbleAdaptive stops after a pass without
//     swaps and is O(n) on sorted input. Stable.
//   - Insertion: O(n) on sorted input, Θ(n²) on average. Stable.
//   - Selection: Θ(n²) comparisons regardless of input, at most n-1 swaps.
//     Not stable.
//
// IndexSort computes the sorting permutation of a slice without modifying it.
package elementary
