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

package hostinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	info := Detect()
	assert.Equal(t, runtime.GOOS, info.GOOS)
	assert.Equal(t, runtime.GOARCH, info.GOARCH)
	assert.Positive(t, info.NumCPU)
	assert.Positive(t, info.GOMAXPROCS)
}

func TestString(t *testing.T) {
	info := Info{GOOS: "linux", GOARCH: "amd64", NumCPU: 8, GOMAXPROCS: 4, Features: []string{"avx", "avx2"}}
	assert.Equal(t, "os=linux arch=amd64 cpus=8 gomaxprocs=4 features=avx,avx2", info.String())

	info.Features = nil
	if !strings.HasSuffix(info.String(), "features=none") {
		t.Errorf("String() = %q, want features=none suffix", info.String())
	}
}
