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
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortkit/internal/hostinfo"
	"github.com/ajroetker/go-sortkit/sortkit"
)

// quadraticLimit is the largest input the Θ(n²) sorts are timed on unless
// --quadratic is given.
const quadraticLimit = 20000

func newBenchCmd(a *app) *cobra.Command {
	var (
		sizes     []int
		names     []string
		rounds    int
		quadratic bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time each algorithm on random integers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rounds <= 0 {
				return a.fail(errors.Errorf("--rounds must be positive, got %d", rounds), "bench")
			}
			algos := make([]algorithm, 0, len(names))
			for _, name := range lo.Uniq(names) {
				algo, err := parseAlgorithm(name)
				if err != nil {
					return a.fail(err, "bench")
				}
				algos = append(algos, algo)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "host: %s\n", hostinfo.Detect())

			r := a.newRand()
			for _, n := range sizes {
				if n < 0 {
					return a.fail(errors.Errorf("negative size %d", n), "bench")
				}
				ref := make([]int, n)
				for i := range ref {
					ref[i] = r.Intn(4*n + 1)
				}
				data := make([]int, n)

				for _, algo := range algos {
					if algo.quadratic() && n > quadraticLimit && !quadratic {
						a.log.WithFields(logrus.Fields{"algo": algo, "n": n}).Warn("skipping quadratic sort; pass --quadratic to time it")
						continue
					}

					var total time.Duration
					for range rounds {
						copy(data, ref)
						start := time.Now()
						sortWith(algo, data, sortkit.Natural[int](), r)
						total += time.Since(start)

						if !sortkit.IsSorted(data) {
							return a.fail(errors.Errorf("%s left n=%d unsorted", algo, n), "bench")
						}
					}
					perOp := total / time.Duration(rounds)
					a.log.WithFields(logrus.Fields{"algo": algo, "n": n, "rounds": rounds}).Debug("measured")
					fmt.Fprintf(out, "%-16s n=%-9d %14d ns/op\n", algo, n, perOp.Nanoseconds())
				}
			}
			return nil
		},
	}

	defaults := lo.Map(algorithms, func(x algorithm, _ int) string { return string(x) })
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{1000, 10000}, "input sizes")
	cmd.Flags().StringSliceVar(&names, "algo", defaults, "algorithms to time")
	cmd.Flags().IntVar(&rounds, "rounds", 3, "runs per algorithm and size")
	cmd.Flags().BoolVar(&quadratic, "quadratic", false, "time the quadratic sorts on inputs over 20000 elements")
	return cmd
}
