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
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"pgregory.net/rand"

	"github.com/ajroetker/go-sortkit/sortkit/contrib/elementary"
	"github.com/ajroetker/go-sortkit/sortkit/contrib/merge"
	"github.com/ajroetker/go-sortkit/sortkit/contrib/quick"
)

// algorithm names a sorting algorithm on the command line.
type algorithm string

const (
	algoBubble         algorithm = "bubble"
	algoBubbleAdaptive algorithm = "bubble-adaptive"
	algoInsertion      algorithm = "insertion"
	algoSelection      algorithm = "selection"
	algoMerge          algorithm = "merge"
	algoMergeBottomUp  algorithm = "merge-bu"
	algoQuick          algorithm = "quick"
)

var algorithms = []algorithm{
	algoBubble,
	algoBubbleAdaptive,
	algoInsertion,
	algoSelection,
	algoMerge,
	algoMergeBottomUp,
	algoQuick,
}

var _ pflag.Value = (*algorithm)(nil)

func (a *algorithm) String() string { return string(*a) }

func (a *algorithm) Set(v string) error {
	parsed, err := parseAlgorithm(v)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a *algorithm) Type() string { return "algorithm" }

func parseAlgorithm(v string) (algorithm, error) {
	if !lo.Contains(algorithms, algorithm(v)) {
		return "", errors.Errorf("unknown algorithm %q (want one of %s)", v, algorithmNames())
	}
	return algorithm(v), nil
}

func algorithmNames() string {
	return strings.Join(lo.Map(algorithms, func(a algorithm, _ int) string { return string(a) }), ", ")
}

// stable reports whether the algorithm keeps equal elements in input order.
func (a algorithm) stable() bool {
	switch a {
	case algoBubble, algoBubbleAdaptive, algoInsertion, algoMerge, algoMergeBottomUp:
		return true
	}
	return false
}

// quadratic reports whether the algorithm is one of the Θ(n²) baselines.
func (a algorithm) quadratic() bool {
	switch a {
	case algoBubble, algoBubbleAdaptive, algoInsertion, algoSelection:
		return true
	}
	return false
}

// sortWith sorts s with algorithm a under c. r feeds the quicksort shuffle.
func sortWith[E any](a algorithm, s []E, c func(x, y E) int, r *rand.Rand) {
	switch a {
	case algoBubble:
		elementary.BubbleFunc(s, c)
	case algoBubbleAdaptive:
		elementary.BubbleAdaptiveFunc(s, c)
	case algoInsertion:
		elementary.InsertionFunc(s, c)
	case algoSelection:
		elementary.SelectionFunc(s, c)
	case algoMerge:
		merge.SortFunc(s, c)
	case algoMergeBottomUp:
		merge.SortBottomUpFunc(s, c)
	case algoQuick:
		quick.SortFunc(s, c, quick.WithRand(r))
	default:
		panic("sortkit: unhandled algorithm " + string(a))
	}
}
