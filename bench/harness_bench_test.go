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

package bench

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-sortbench/dataset"
)

func BenchmarkMeasure(b *testing.B) {
	source := dataset.Permutation(1<<16, dataset.NewRand(1))
	for _, algo := range Algorithms() {
		h := New(source, WithAlgorithm(algo))
		for _, size := range []int{16, 1 << 10, 1 << 16} {
			b.Run(fmt.Sprintf("%s/size=%d", algo.BenchName, size), func(b *testing.B) {
				b.SetBytes(int64(len(source) * 8))
				for i := 0; i < b.N; i++ {
					h.Measure(size)
				}
			})
		}
	}
}
