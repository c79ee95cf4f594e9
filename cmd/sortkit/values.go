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
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// readTokens returns the positional arguments, or the whitespace-separated
// fields of standard input when there are none.
func readTokens(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, "reading standard input")
	}
	return strings.Fields(string(data)), nil
}

func parseNumber(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Errorf("not a number: %q", tok)
	}
	return v, nil
}

func parseNumbers(tokens []string) ([]float64, error) {
	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatNumbers(vals []float64) []string {
	return lo.Map(vals, func(v float64, _ int) string { return formatNumber(v) })
}

// order returns the natural order of E, reversed when desc is set.
func order[E constraints.Ordered](desc bool) func(a, b E) int {
	if desc {
		return sortkit.Reverse(sortkit.Natural[E]())
	}
	return sortkit.Natural[E]()
}
