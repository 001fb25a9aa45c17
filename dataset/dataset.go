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

// Package dataset builds the unsorted input for the sort benchmark: a random
// permutation of 0..n-1.
package dataset

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// NewRand returns a PCG generator seeded with seed. A zero seed draws a fresh
// seed from the runtime's global source, so successive runs differ.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Iota returns 0, 1, ..., n-1.
func Iota(n int) []int64 {
	return lo.RangeFrom(int64(0), n)
}

// Shuffle permutes data uniformly at random (Fisher-Yates): for i = 1..n-1 it
// swaps data[i] with data[r], r drawn uniformly from [0, i].
func Shuffle(data []int64, rng *rand.Rand) {
	for i := 1; i < len(data); i++ {
		r := rng.IntN(i + 1)
		data[r], data[i] = data[i], data[r]
	}
}

// Permutation returns 0..n-1 in random order.
func Permutation(n int, rng *rand.Rand) []int64 {
	data := Iota(n)
	Shuffle(data, rng)
	return data
}

// IsPermutation reports whether data holds each of 0..len(data)-1 exactly once.
func IsPermutation(data []int64) bool {
	seen := make([]bool, len(data))
	for _, v := range data {
		if v < 0 || v >= int64(len(data)) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
