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
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sortbench/sort"
)

// SortFunc sorts data[first:last] in place.
type SortFunc func(data []int64, first, last int)

// Algorithm is a sort the harness can measure.
type Algorithm struct {
	// Name is the identifier used on the command line.
	Name string

	// BenchName is the Go benchmark name, e.g. "Quicksort".
	BenchName string

	// Description is a one-line summary for listings.
	Description string

	Sort SortFunc
}

var algorithms = []Algorithm{
	{
		Name:        "quicksort",
		BenchName:   "Quicksort",
		Description: "hybrid quicksort, median-of-3, unguarded insertion cleanup",
		Sort:        sort.Quicksort,
	},
	{
		Name:        "quicksort-bounded",
		BenchName:   "QuicksortBounded",
		Description: "hybrid quicksort with heapsort past 2*log2(n) levels",
		Sort:        sort.QuicksortBounded,
	},
	{
		Name:        "heapsort",
		BenchName:   "HeapSort",
		Description: "in-place heapsort",
		Sort: func(data []int64, first, last int) {
			sort.HeapSort(data[first:last])
		},
	},
	{
		Name:        "stdlib",
		BenchName:   "Stdlib",
		Description: "slices.Sort (pattern-defeating quicksort)",
		Sort: func(data []int64, first, last int) {
			slices.Sort(data[first:last])
		},
	},
}

// Algorithms returns the registered algorithms, default first.
func Algorithms() []Algorithm {
	return slices.Clone(algorithms)
}

// Names returns the registered algorithm names.
func Names() []string {
	return lo.Map(algorithms, func(a Algorithm, _ int) string { return a.Name })
}

// Lookup returns the algorithm registered under name (case-insensitive).
func Lookup(name string) (Algorithm, error) {
	a, ok := lo.Find(algorithms, func(a Algorithm) bool {
		return strings.EqualFold(a.Name, name)
	})
	if !ok {
		return Algorithm{}, errors.Newf("unknown algorithm %q, want one of %s", name, strings.Join(Names(), ", "))
	}
	return a, nil
}
