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

package elementary

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	algosort "github.com/twmb/algoimpl/go/sort"
	"pgregory.net/rand"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// sorter is the common shape of the whole-slice comparator sorts.
type sorter struct {
	name   string
	sort   func([]int, func(a, b int) int)
	stable bool
}

var sorters = []sorter{
	{"Bubble", BubbleFunc[int], true},
	{"BubbleAdaptive", BubbleAdaptiveFunc[int], true},
	{"Insertion", InsertionFunc[int], true},
	{"Selection", SelectionFunc[int], false},
}

// record is used for stability checks: key is compared, seq records the
// input position.
type record struct {
	key int
	seq int
}

// intSlice adapts []int to algoimpl's Sortable.
type intSlice []int

func (s intSlice) Len() int           { return len(s) }
func (s intSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s intSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func randomInts(r *rand.Rand, n, limit int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(limit)
	}
	return data
}

func TestNaturalOrderScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{42}, []int{42}},
		{"bubble_demo", []int{11, 2, 9, 8, 3, 1}, []int{1, 2, 3, 8, 9, 11}},
		{"merge_demo", []int{45, 23, 11, 89, 77, 98, 4, 28, 65, 43}, []int{4, 11, 23, 28, 43, 45, 65, 77, 89, 98}},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}, []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}},
		{"all_same", []int{5, 5, 5, 5}, []int{5, 5, 5, 5}},
	}
	natural := map[string]func([]int){
		"Bubble":         Bubble[int],
		"BubbleAdaptive": BubbleAdaptive[int],
		"Insertion":      Insertion[int],
		"Selection":      Selection[int],
	}
	for name, sortFn := range natural {
		for _, tt := range tests {
			t.Run(name+"_"+tt.name, func(t *testing.T) {
				data := slices.Clone(tt.in)
				sortFn(data)
				if diff := cmp.Diff(tt.want, data); diff != "" {
					t.Errorf("%s(%v) mismatch (-want +got):\n%s", name, tt.in, diff)
				}
			})
		}
	}
}

func TestStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "banana"}
	Insertion(data)
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, data)

	data = []string{"pear", "apple", "fig", "banana"}
	SelectionFunc(data, sortkit.Reverse(sortkit.Natural[string]()))
	assert.Equal(t, []string{"pear", "fig", "banana", "apple"}, data)
}

func TestRandomMatchesOracle(t *testing.T) {
	r := rand.New(12345)
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 64, 100, 257}
	for _, s := range sorters {
		for _, n := range sizes {
			data := randomInts(r, n, 50)
			want := slices.Clone(data)
			algosort.InsertionSort(intSlice(want))

			s.sort(data, sortkit.Natural[int]())
			if !slices.Equal(data, want) {
				t.Errorf("%s(random, n=%d) = %v, want %v", s.name, n, data, want)
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	r := rand.New(3)
	for _, s := range sorters {
		data := randomInts(r, 200, 1000)
		s.sort(data, sortkit.Natural[int]())
		once := slices.Clone(data)
		s.sort(data, sortkit.Natural[int]())
		assert.Equal(t, once, data, "%s is not idempotent", s.name)
	}
}

func TestStability(t *testing.T) {
	r := rand.New(77)
	byKey := sortkit.By(func(x record) int { return x.key }, sortkit.Natural[int]())
	stableSorts := map[string]func([]record, func(a, b record) int){
		"Bubble":         BubbleFunc[record],
		"BubbleAdaptive": BubbleAdaptiveFunc[record],
		"Insertion":      InsertionFunc[record],
	}
	for name, sortFn := range stableSorts {
		data := make([]record, 300)
		for i := range data {
			data[i] = record{key: r.Intn(10), seq: i}
		}
		sortFn(data, byKey)
		for i := 1; i < len(data); i++ {
			prev, cur := data[i-1], data[i]
			if prev.key > cur.key || (prev.key == cur.key && prev.seq > cur.seq) {
				t.Fatalf("%s is not stable at %d: %+v before %+v", name, i, prev, cur)
			}
		}
	}
}

func TestRangeLeavesOutsideAlone(t *testing.T) {
	rangeSorts := map[string]func([]int, int, int){
		"Bubble":    BubbleRange[int],
		"Insertion": InsertionRange[int],
		"Selection": SelectionRange[int],
	}
	for name, sortFn := range rangeSorts {
		data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
		sortFn(data, 2, 6)
		assert.Equal(t, []int{9, 8, 3, 4, 5, 6, 7, 2, 1, 0}, data, name)

		// An empty range is a no-op.
		sortFn(data, 4, 3)
		assert.Equal(t, []int{9, 8, 3, 4, 5, 6, 7, 2, 1, 0}, data, name)

		assert.Panics(t, func() { sortFn(data, -1, 3) }, name)
		assert.Panics(t, func() { sortFn(data, 0, 10) }, name)
	}

	data := []int{5, 1, 4, 2, 3}
	InsertionRangeFunc(data, 1, 4, sortkit.Reverse(sortkit.Natural[int]()))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, data)

	data = []int{5, 1, 4, 2, 3}
	BubbleRangeFunc(data, 0, 2, sortkit.Natural[int]())
	assert.Equal(t, []int{1, 4, 5, 2, 3}, data)

	data = []int{5, 1, 4, 2, 3}
	SelectionRangeFunc(data, 3, 4, sortkit.Reverse(sortkit.Natural[int]()))
	assert.Equal(t, []int{5, 1, 4, 3, 2}, data)
}

// countingCompare counts comparator calls, to tell the bubble variants apart.
func countingCompare(calls *int) func(a, b int) int {
	return func(a, b int) int {
		*calls++
		return a - b
	}
}

func TestBubbleFullPasses(t *testing.T) {
	const n = 20
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}

	var full, adaptive int
	BubbleFunc(slices.Clone(sorted), countingCompare(&full))
	BubbleAdaptiveFunc(slices.Clone(sorted), countingCompare(&adaptive))

	assert.Equal(t, n*(n-1)/2, full, "Bubble should run every pass on sorted input")
	assert.Equal(t, n-1, adaptive, "BubbleAdaptive should stop after one clean pass")
}

func TestIndexSort(t *testing.T) {
	data := []string{"d", "b", "a", "b", "c"}
	orig := slices.Clone(data)

	p := IndexSort(data)
	require.Equal(t, orig, data, "IndexSort must not modify its input")
	assert.Equal(t, []int{2, 1, 3, 4, 0}, p)

	p = IndexSortFunc(data, sortkit.Reverse(sortkit.Natural[string]()))
	assert.Equal(t, []int{0, 4, 1, 3, 2}, p)

	assert.Empty(t, IndexSort([]int{}))
}
