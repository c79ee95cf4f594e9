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
	"testing"

	"pgregory.net/rand"
)

func BenchmarkBubble_1000(b *testing.B) {
	benchmarkSort(b, 1000, Bubble[int])
}

func BenchmarkBubbleAdaptive_1000(b *testing.B) {
	benchmarkSort(b, 1000, BubbleAdaptive[int])
}

func BenchmarkInsertion_1000(b *testing.B) {
	benchmarkSort(b, 1000, Insertion[int])
}

func BenchmarkSelection_1000(b *testing.B) {
	benchmarkSort(b, 1000, Selection[int])
}

func benchmarkSort(b *testing.B, n int, sortFn func([]int)) {
	ref := randomInts(rand.New(1), n, 10000)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sortFn(data)
	}
}
