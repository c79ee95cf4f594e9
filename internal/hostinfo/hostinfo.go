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

// Package hostinfo describes the machine benchmarks run on, so timings from
// different hosts can be told apart.
package hostinfo

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Info is a snapshot of the host.
type Info struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	// Features lists the notable instruction set extensions detected by
	// golang.org/x/sys/cpu, in a fixed order.
	Features []string
}

// Detect returns the current host description.
func Detect() Info {
	return Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   features(),
	}
}

// String formats the snapshot as a single line of key=value pairs.
func (i Info) String() string {
	feats := "none"
	if len(i.Features) > 0 {
		feats = strings.Join(i.Features, ",")
	}
	return fmt.Sprintf("os=%s arch=%s cpus=%d gomaxprocs=%d features=%s",
		i.GOOS, i.GOARCH, i.NumCPU, i.GOMAXPROCS, feats)
}

func features() []string {
	var out []string
	add := func(name string, ok bool) {
		if ok {
			out = append(out, name)
		}
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse4.2", cpu.X86.HasSSE42)
		add("avx", cpu.X86.HasAVX)
		add("avx2", cpu.X86.HasAVX2)
		add("fma", cpu.X86.HasFMA)
		add("avx512f", cpu.X86.HasAVX512F)
		add("bmi2", cpu.X86.HasBMI2)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("sve", cpu.ARM64.HasSVE)
		add("sve2", cpu.ARM64.HasSVE2)
		add("atomics", cpu.ARM64.HasATOMICS)
	}
	return out
}
