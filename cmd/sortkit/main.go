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

// Command sortkit sorts, selects and searches whitespace-separated values
// with the go-sortkit algorithms, and checks or benchmarks the algorithms
// themselves.
//
// Usage:
//
//	echo "pear apple fig" | sortkit sort --algo insertion
//	sortkit sort --numeric -- 45 23 11 89 77 98 4 28 65 43
//	sortkit select --rank 0 --numeric 45 23 11 89
//	sortkit search --key 8 --numeric 2 4 6 8 10 12 14 16
//	sortkit check --trials 1000 --workers 8
//	sortkit bench --sizes 1000,100000 --algo merge,quick
//
// Values come from the arguments when present and from standard input
// otherwise. With --numeric they are parsed and ordered as numbers; by
// default they are ordered as strings.
//
// The shuffle used by quicksort and selection is seeded from --seed, then
// from the SORTKIT_SEED environment variable, and randomly otherwise.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
