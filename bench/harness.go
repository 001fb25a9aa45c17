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

// Package bench measures how sort time scales with input size. For every
// power-of-two size class it sorts consecutive windows of one large source
// array until the whole array has been covered, and times the class as a
// single pass.
package bench

import (
	"time"

	"go.uber.org/zap"
)

// Sample is the measurement of one size class.
type Sample struct {
	// Size is the window length.
	Size int

	// Windows is how many windows of Size were sorted.
	Windows int

	// Elapsed is the wall-clock time for all windows, copies included.
	Elapsed time.Duration
}

// Elements returns the number of elements sorted across all windows.
func (s Sample) Elements() int {
	return s.Size * s.Windows
}

// Harness sorts windows of a source array in a scratch buffer it owns.
// It is not safe for concurrent use.
type Harness struct {
	source  []int64
	scratch []int64
	algo    Algorithm
	logger  *zap.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithAlgorithm selects the sort to measure.
func WithAlgorithm(a Algorithm) Option {
	return func(h *Harness) {
		h.algo = a
	}
}

// WithSortFunc measures fn under the given name.
func WithSortFunc(name string, fn SortFunc) Option {
	return func(h *Harness) {
		h.algo = Algorithm{Name: name, BenchName: name, Sort: fn}
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// New returns a harness over source, which must not be modified while the
// harness is in use. The scratch buffer is allocated with len(source) slots.
func New(source []int64, opts ...Option) *Harness {
	h := &Harness{
		source:  source,
		scratch: make([]int64, len(source)),
		algo:    algorithms[0],
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Algorithm returns the algorithm being measured.
func (h *Harness) Algorithm() Algorithm {
	return h.algo
}

// Measure sorts every non-overlapping window of size elements of the source
// and returns the total time. A trailing partial window is skipped.
func (h *Harness) Measure(size int) Sample {
	sortFn := h.algo.Sort
	windows := 0

	start := time.Now()
	for first := 0; first+size <= len(h.source); first += size {
		copy(h.scratch[:size], h.source[first:first+size])
		sortFn(h.scratch, 0, size)
		windows++
	}
	elapsed := time.Since(start)

	h.logger.Debug("size class done",
		zap.Int("size", size),
		zap.Int("windows", windows),
		zap.Duration("elapsed", elapsed))
	return Sample{Size: size, Windows: windows, Elapsed: elapsed}
}

// Sweep measures every size class from minSize to maxSize in increasing
// order. Size classes larger than the source are skipped.
func (h *Harness) Sweep(minSize, maxSize int) []Sample {
	sizes := Sizes(minSize, min(maxSize, len(h.source)))
	h.logger.Info("sweep started",
		zap.String("algorithm", h.algo.Name),
		zap.Int("source", len(h.source)),
		zap.Ints("sizes", sizes))

	samples := make([]Sample, 0, len(sizes))
	start := time.Now()
	for _, size := range sizes {
		samples = append(samples, h.Measure(size))
	}

	h.logger.Info("sweep finished",
		zap.Int("size-classes", len(samples)),
		zap.Duration("elapsed", time.Since(start)))
	return samples
}

// Sizes returns minSize, 2*minSize, ... up to and including maxSize.
func Sizes(minSize, maxSize int) []int {
	var sizes []int
	if minSize <= 0 {
		return sizes
	}
	for size := minSize; size <= maxSize; size *= 2 {
		sizes = append(sizes, size)
	}
	return sizes
}
