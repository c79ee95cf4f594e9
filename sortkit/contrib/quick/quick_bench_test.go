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
	"testing"

	"pgregory.net/rand"
)

func BenchmarkSort_1000(b *testing.B) {
	benchmarkSort(b, 1000)
}

func BenchmarkSort_10000(b *testing.B) {
	benchmarkSort(b, 10000)
}

func BenchmarkSort_100000(b *testing.B) {
	benchmarkSort(b, 100000)
}

func benchmarkSort(b *testing.B, n int) {
	r := rand.New(1)
	ref := randomInts(r, n, 10000)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data, WithRand(r))
	}
}

func BenchmarkSelect_Median_100000(b *testing.B) {
	const n = 100000
	r := rand.New(1)
	ref := randomInts(r, n, 10000)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if _, err := Select(data, n/2, WithRand(r)); err != nil {
			b.Fatal(err)
		}
	}
}
