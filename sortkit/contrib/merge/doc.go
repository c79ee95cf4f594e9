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

// Package merge provides stable merge sort, driven either recursively
// (top-down) or iteratively (bottom-up).
//
// Both drivers share a single merge step that combines two adjacent sorted
// runs s[lo..mid] and s[mid+1..hi] through an auxiliary buffer. The buffer is
// allocated once per top-level call and sized to the range being sorted;
// sub-problems are delimited by index ranges over the caller's slice, so no
// other copying takes place.
//
// # Algorithm
//
// The recursive driver splits [lo, hi] at mid = lo + (hi-lo)/2, sorts both
// halves and merges them. Recursion depth is O(log n).
//
// The bottom-up driver merges runs of length 1, 2, 4, ... across the whole
// range. The last run of a pass may be shorter than the others; a pass skips
// any block whose second run would be empty. It needs no recursion at all.
//
// Both drivers perform Θ(n log n) comparisons and moves, use Θ(n) extra
// space, and produce identical output. Equal elements keep their input order.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortkit/sortkit/contrib/merge"
//
//	func Process(data []int) {
//	    merge.Sort(data)          // top-down
//	    merge.SortBottomUp(data)  // bottom-up, no recursion
//	}
package merge
