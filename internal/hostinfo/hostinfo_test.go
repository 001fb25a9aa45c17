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

package hostinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelScalar, "scalar"},
		{LevelSSE2, "sse2"},
		{LevelAVX2, "avx2"},
		{LevelAVX512, "avx512"},
		{LevelNEON, "neon"},
		{LevelSVE, "sve"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("SORTBENCH_NO_SIMD", "")
	info := Detect()
	assert.Equal(t, runtime.GOOS, info.GOOS)
	assert.Equal(t, runtime.GOARCH, info.GOARCH)
	assert.Positive(t, info.NumCPU)
	assert.NotEqual(t, "unknown", info.Level.String())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("SORTBENCH_NO_SIMD", tt.val)
		assert.Equal(t, tt.want, NoSimdEnv(), "SORTBENCH_NO_SIMD=%q", tt.val)
	}

	t.Setenv("SORTBENCH_NO_SIMD", "1")
	assert.Equal(t, LevelScalar, Detect().Level)
}

func TestInfoField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	info := Info{GOOS: "linux", GOARCH: "amd64", NumCPU: 8, Level: LevelAVX2}
	zap.New(core).Info("host", info.Field())

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		host, ok := entries[0].ContextMap()["host"].(map[string]any)
		if assert.True(t, ok) {
			assert.Equal(t, "avx2", host["simd"])
			assert.Equal(t, "linux", host["goos"])
		}
	}
	assert.Equal(t, "avx2 x8", info.CPU())
}
