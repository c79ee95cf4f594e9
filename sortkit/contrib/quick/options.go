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
	"pgregory.net/rand"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// Option configures Sort and Select.
type Option func(*options)

type options struct {
	rand *rand.Rand
}

// WithRand makes the shuffle draw from r instead of a fresh source.
// A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rand == nil {
		o.rand = sortkit.NewRand()
	}
	return o
}
