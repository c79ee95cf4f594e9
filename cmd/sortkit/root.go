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

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"pgregory.net/rand"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// app holds the state shared by all subcommands.
type app struct {
	log      *logrus.Logger
	logLevel string
	seed     uint64
	seedSet  bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:           "sortkit",
		Short:         "Sort, select and search values with classic comparison sorts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warning", "log level (trace, debug, info, warning, error)")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "seed for the quicksort shuffle (default: $"+sortkit.SeedEnvVar+" or random)")

	root.AddCommand(
		newSortCmd(a),
		newSelectCmd(a),
		newSearchCmd(a),
		newCheckCmd(a),
		newBenchCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	a.log.SetLevel(level)

	a.seedSet = cmd.Flags().Changed("seed")
	return nil
}

// resolveSeed returns the configured seed: --seed first, then SORTKIT_SEED.
func (a *app) resolveSeed() (uint64, bool) {
	if a.seedSet {
		return a.seed, true
	}
	return sortkit.SeedEnv()
}

func (a *app) newRand() *rand.Rand {
	if seed, ok := a.resolveSeed(); ok {
		a.log.WithField("seed", seed).Debug("using fixed seed")
		return rand.New(seed)
	}
	return rand.New()
}

// fail annotates err with msg and logs it with its stack trace at debug level.
// main prints the returned error.
func (a *app) fail(err error, msg string) error {
	err = errors.Wrap(err, msg)
	a.log.WithField("stack", fmt.Sprintf("%+v", err)).Debug(msg)
	return err
}
