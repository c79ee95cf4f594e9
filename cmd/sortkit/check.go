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

package main

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"pgregory.net/rand"

	"github.com/ajroetker/go-sortkit/internal/workerpool"
	"github.com/ajroetker/go-sortkit/sortkit"
	"github.com/ajroetker/go-sortkit/sortkit/contrib/quick"
	"github.com/ajroetker/go-sortkit/sortkit/contrib/search"
)

// item is a check element: Key is ordered on, Seq records the input position
// so stability violations are visible.
type item struct {
	Key int
	Seq int
}

var (
	byKey    = sortkit.By(func(x item) int { return x.Key }, sortkit.Natural[int]())
	bySeq    = sortkit.By(func(x item) int { return x.Seq }, sortkit.Natural[int]())
	byKeySeq = sortkit.Then(byKey, bySeq)
)

func keysOf(s []item) []int {
	return lo.Map(s, func(x item, _ int) int { return x.Key })
}

func newCheckCmd(a *app) *cobra.Command {
	var trials, maxLen, workers int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run randomized property checks against every algorithm",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if trials < 0 || maxLen < 0 {
				return a.fail(errors.New("--trials and --max-len must not be negative"), "check")
			}

			base, ok := a.resolveSeed()
			if !ok {
				base = rand.New().Uint64()
			}

			pool := workerpool.New(workers)
			defer pool.Close()

			log := a.log.WithFields(logrus.Fields{
				"trials":  trials,
				"max_len": maxLen,
				"workers": pool.NumWorkers(),
				"seed":    base,
			})
			log.Info("starting property checks")

			var elements atomic.Int64
			err := pool.ForEach(trials, func(i int) error {
				n, err := checkTrial(rand.New(base+uint64(i)), maxLen)
				elements.Add(int64(n))
				return err
			})
			if err != nil {
				return a.fail(err, fmt.Sprintf("property check failed (seed %d)", base))
			}

			log.WithField("elements", elements.Load()).Info("property checks passed")
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d trials, %d algorithms, seed %d\n", trials, len(algorithms), base)
			return nil
		},
	}
	cmd.Flags().IntVar(&trials, "trials", 200, "number of random inputs to check")
	cmd.Flags().IntVar(&maxLen, "max-len", 300, "maximum input length")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default GOMAXPROCS)")
	return cmd
}

// checkTrial draws one random input from r and checks every algorithm, then
// selection and binary search, against it. It returns the input length.
func checkTrial(r *rand.Rand, maxLen int) (int, error) {
	n := r.Intn(maxLen + 1)
	// Few distinct keys means many ties, which is where stability shows.
	distinct := 1 + r.Intn(n+1)

	input := make([]item, n)
	for i := range input {
		input[i] = item{Key: r.Intn(distinct), Seq: i}
	}
	want := slices.Clone(input)
	slices.SortStableFunc(want, byKey)

	for _, algo := range algorithms {
		got := slices.Clone(input)
		sortWith(algo, got, byKey, r)

		if !sortkit.IsSortedFunc(got, byKey) {
			return n, errors.Errorf("%s: output not sorted (n=%d)", algo, n)
		}
		if algo.stable() {
			if !slices.Equal(got, want) {
				return n, errors.Errorf("%s: equal keys reordered (n=%d)", algo, n)
			}
		} else {
			perm := slices.Clone(got)
			slices.SortFunc(perm, byKeySeq)
			if !slices.Equal(perm, want) {
				return n, errors.Errorf("%s: output is not a permutation of the input (n=%d)", algo, n)
			}
		}

		again := slices.Clone(got)
		sortWith(algo, again, byKey, r)
		if !slices.Equal(keysOf(again), keysOf(got)) {
			return n, errors.Errorf("%s: sorting twice changed the result (n=%d)", algo, n)
		}
	}

	if _, err := quick.SelectFunc(slices.Clone(input), n, byKey, quick.WithRand(r)); !errors.Is(err, sortkit.ErrRankOutOfRange) {
		return n, errors.Errorf("select: rank %d of %d accepted", n, n)
	}
	if n == 0 {
		return n, nil
	}

	k := r.Intn(n)
	got, err := quick.SelectFunc(slices.Clone(input), k, byKey, quick.WithRand(r))
	if err != nil {
		return n, errors.Wrap(err, "select")
	}
	if got.Key != want[k].Key {
		return n, errors.Errorf("select: rank %d gave key %d, want %d (n=%d)", k, got.Key, want[k].Key, n)
	}

	keys := keysOf(want)
	probe := r.Intn(distinct+2) - 1
	idx := search.Binary(keys, probe)
	_, present := slices.BinarySearch(keys, probe)
	switch {
	case present && (idx == search.NotFound || keys[idx] != probe):
		return n, errors.Errorf("search: key %d present but got index %d (n=%d)", probe, idx, n)
	case !present && idx != search.NotFound:
		return n, errors.Errorf("search: key %d absent but got index %d (n=%d)", probe, idx, n)
	}
	return n, nil
}
