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

package sort

// Threshold is the range length at or below which partitioning stops and
// insertion sort takes over.
const Threshold = 16

// unbounded disables the depth budget in quicksortLoop.
const unbounded = -1

// Sort sorts data in-place in ascending order using Quicksort.
func Sort(data []int64) {
	Quicksort(data, 0, len(data))
}

// Quicksort sorts data[first:last] in-place in ascending order.
// Elements outside the range are not touched. The sort is not stable.
//
// The caller guarantees 0 <= first <= last <= len(data).
func Quicksort(data []int64, first, last int) {
	quicksort(data, first, last, unbounded)
}

// QuicksortBounded is Quicksort with a recursion depth budget of
// 2*floor(log2(n))+2 partition levels. A range that exhausts the budget is
// heapsorted, which caps the worst case at O(n log n).
func QuicksortBounded(data []int64, first, last int) {
	quicksort(data, first, last, depthBudget(last-first))
}

func quicksort(data []int64, first, last, depthLimit int) {
	if last-first <= Threshold {
		insertionSort(data, first, last)
		return
	}

	quicksortLoop(data, first, last, depthLimit)

	// The minimum of the whole range now sits within the first Threshold
	// elements, so it becomes the sentinel for the unguarded pass.
	middle := first + Threshold
	insertionSort(data, first, middle)
	unguardedInsertionSort(data, middle, last)
}

// quicksortLoop partitions data[first:last] until every unsorted block holds at
// most Threshold elements. Blocks are ordered relative to each other but not
// sorted internally.
func quicksortLoop(data []int64, first, last, depthLimit int) {
	for last-first > Threshold {
		if depthLimit == 0 {
			HeapSort(data[first:last])
			return
		}
		if depthLimit > 0 {
			depthLimit--
		}

		middle := first + (last-first)/2
		pivot := MedianOf3(data[first], data[middle], data[last-1])
		cut := unguardedPartition(data, first, last, pivot)

		// Recurse on the smaller side, loop on the larger one.
		if last-cut < cut-first {
			quicksortLoop(data, cut, last, depthLimit)
			last = cut
		} else {
			quicksortLoop(data, first, cut, depthLimit)
			first = cut
		}
	}
}

// MedianOf3 returns the median of a, b and c.
func MedianOf3(a, b, c int64) int64 {
	if a < b {
		if b < c {
			return b
		} else if a < c {
			return c
		}
		return a
	}
	if a < c {
		return a
	} else if b < c {
		return c
	}
	return b
}

// unguardedPartition partitions data[first:last] around pivot and returns the
// cut index: data[first:cut] <= pivot and data[cut:last] >= pivot.
//
// pivot must be one of the values in the range. That value stops both scans,
// so neither loop checks its index against the range bounds.
func unguardedPartition(data []int64, first, last int, pivot int64) int {
	last--
	for data[first] < pivot {
		first++
	}
	for pivot < data[last] {
		last--
	}
	for first < last {
		data[first], data[last] = data[last], data[first]
		first++
		last--
		for data[first] < pivot {
			first++
		}
		for pivot < data[last] {
			last--
		}
	}
	return first
}

// depthBudget returns 2*floor(log2(n))+2.
func depthBudget(n int) int {
	depth := 0
	for tmp := n; tmp > 1; tmp >>= 1 {
		depth++
	}
	return 2*depth + 2
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted(data []int64) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
