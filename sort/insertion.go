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

// Insertion sort building blocks shared by the small-range path and the final
// cleanup pass of Quicksort.

// insertionSort sorts data[first:last] with a bounds-checked insertion sort.
func insertionSort(data []int64, first, last int) {
	if first == last {
		return
	}
	for i := first + 1; i != last; i++ {
		linearInsert(data, first, i, data[i])
	}
}

// linearInsert inserts value into the sorted prefix data[first:last], using
// data[last] as the free slot.
func linearInsert(data []int64, first, last int, value int64) {
	if value < data[first] {
		// value is the new minimum: shift the whole prefix right.
		copy(data[first+1:last+1], data[first:last])
		data[first] = value
		return
	}
	// data[first] <= value stops the scan.
	unguardedLinearInsert(data, last, value)
}

// unguardedInsertionSort insertion sorts data[first:last]. Some element before
// first must be <= every element of the range.
func unguardedInsertionSort(data []int64, first, last int) {
	for i := first; i != last; i++ {
		unguardedLinearInsert(data, i, data[i])
	}
}

// unguardedLinearInsert shifts elements greater than value one slot to the
// right, starting at last-1, and stores value in the hole. There is no lower
// bound check: a smaller or equal element must exist to the left.
func unguardedLinearInsert(data []int64, last int, value int64) {
	previous := last - 1
	for value < data[previous] {
		data[last] = data[previous]
		last = previous
		previous--
	}
	data[last] = value
}
