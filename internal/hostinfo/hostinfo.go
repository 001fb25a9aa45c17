// Copyright 2025 go-sortbench Authors
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

// Package hostinfo describes the machine a benchmark runs on.
package hostinfo

import (
	"os"
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level identifies the widest SIMD instruction set the CPU offers.
type Level int

const (
	// LevelScalar indicates no usable SIMD extension (or SIMD reporting disabled).
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit).
	LevelNEON

	// LevelSVE indicates ARM SVE (scalable vector).
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Info describes the host.
type Info struct {
	GOOS   string
	GOARCH string
	NumCPU int
	Level  Level
}

// Detect inspects the running host.
func Detect() Info {
	level := detectLevel()
	if NoSimdEnv() {
		level = LevelScalar
	}
	return Info{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
		Level:  level,
	}
}

// CPU summarizes the processor for report headers, e.g. "avx2 x16".
func (i Info) CPU() string {
	return i.Level.String() + " x" + strconv.Itoa(i.NumCPU)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (i Info) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("goos", i.GOOS)
	enc.AddString("goarch", i.GOARCH)
	enc.AddInt("cpus", i.NumCPU)
	enc.AddString("simd", i.Level.String())
	return nil
}

// Field returns i as a zap field.
func (i Info) Field() zap.Field {
	return zap.Object("host", i)
}

// NoSimdEnv checks if the SORTBENCH_NO_SIMD environment variable is set.
// When set, the host is reported as scalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("SORTBENCH_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
