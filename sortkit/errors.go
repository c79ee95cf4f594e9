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

package sortkit

import "github.com/pkg/errors"

// Errors returned by go-sortkit. They are always wrapped with the offending
// values, so match them with errors.Is.
var (
	// ErrIndexOutOfRange is returned by At and Set for an index outside [0, n).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned by CheckRange for a range [lo, hi] that does
	// not fit the sequence.
	ErrInvalidRange = errors.New("invalid range")

	// ErrRankOutOfRange is returned by order-statistic selection when the
	// requested rank is outside [0, n).
	ErrRankOutOfRange = errors.New("rank out of range")
)
