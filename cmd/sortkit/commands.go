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
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortkit/sortkit/contrib/quick"
	"github.com/ajroetker/go-sortkit/sortkit/contrib/search"
)

func newSortCmd(a *app) *cobra.Command {
	algo := algoMerge
	var numeric, reverse bool

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort values and print them in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := readTokens(cmd, args)
			if err != nil {
				return a.fail(err, "sort")
			}
			r := a.newRand()
			a.log.WithFields(logrus.Fields{"algo": algo, "count": len(tokens), "numeric": numeric}).Info("sorting")

			out := tokens
			if numeric {
				nums, err := parseNumbers(tokens)
				if err != nil {
					return a.fail(err, "sort")
				}
				sortWith(algo, nums, order[float64](reverse), r)
				out = formatNumbers(nums)
			} else {
				sortWith(algo, out, order[string](reverse), r)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
			return nil
		},
	}
	cmd.Flags().Var(&algo, "algo", "algorithm: "+algorithmNames())
	cmd.Flags().BoolVar(&numeric, "numeric", false, "order values as numbers")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "sort in descending order")
	return cmd
}

func newSelectCmd(a *app) *cobra.Command {
	var (
		rank    int
		all     bool
		numeric bool
	)

	cmd := &cobra.Command{
		Use:   "select [values...]",
		Short: "Print the value of a given rank without sorting",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := readTokens(cmd, args)
			if err != nil {
				return a.fail(err, "select")
			}
			r := a.newRand()

			ranks := []int{rank}
			if all {
				ranks = make([]int, len(tokens))
				for i := range ranks {
					ranks[i] = i
				}
			}

			var picked []string
			if numeric {
				nums, err := parseNumbers(tokens)
				if err != nil {
					return a.fail(err, "select")
				}
				for _, k := range ranks {
					v, err := quick.Select(slices.Clone(nums), k, quick.WithRand(r))
					if err != nil {
						return a.fail(err, "select")
					}
					picked = append(picked, formatNumber(v))
				}
			} else {
				for _, k := range ranks {
					v, err := quick.Select(slices.Clone(tokens), k, quick.WithRand(r))
					if err != nil {
						return a.fail(err, "select")
					}
					picked = append(picked, v)
				}
			}
			a.log.WithFields(logrus.Fields{"ranks": len(ranks), "count": len(tokens)}).Info("selected")
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(picked, " "))
			return nil
		},
	}
	cmd.Flags().IntVar(&rank, "rank", 0, "0-based rank to select")
	cmd.Flags().BoolVar(&all, "all", false, "select every rank in turn")
	cmd.Flags().BoolVar(&numeric, "numeric", false, "order values as numbers")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		key     string
		numeric bool
	)

	cmd := &cobra.Command{
		Use:   "search --key KEY [sorted values...]",
		Short: "Binary search sorted values and print the index of the key, or -1",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := readTokens(cmd, args)
			if err != nil {
				return a.fail(err, "search")
			}

			var idx int
			if numeric {
				nums, err := parseNumbers(tokens)
				if err != nil {
					return a.fail(err, "search")
				}
				k, err := parseNumber(key)
				if err != nil {
					return a.fail(err, "search")
				}
				idx = search.Binary(nums, k)
			} else {
				idx = search.Binary(tokens, key)
			}
			a.log.WithFields(logrus.Fields{"key": key, "index": idx}).Info("searched")
			fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(idx))
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "value to look for")
	cmd.Flags().BoolVar(&numeric, "numeric", false, "compare values as numbers")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
