// Package sort provides a hybrid quicksort for int64 slices.
//
// # Algorithm
//
// Quicksort is a partition-based sort tuned for a low instruction count:
//   - Ranges of Threshold elements or fewer are insertion sorted directly.
//   - Larger ranges are partitioned around the median of the first, middle and
//     last elements with scanning loops that carry no index comparisons.
//   - The smaller side of every partition is handled recursively and the larger
//     side iteratively, so recursion depth stays O(log n).
//   - Partitioning stops at ranges of Threshold elements, leaving the slice
//     almost sorted. A guarded insertion sort over the first Threshold elements
//     moves the minimum to the front, and an unguarded insertion sort finishes
//     the rest using that minimum as a sentinel.
//
// The sort is not stable. Like the classic STL introsort without its heapsort
// guard, adversarial inputs can still drive Quicksort to O(n²) work;
// QuicksortBounded adds that guard for callers who need it.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortbench/sort"
//
//	func ProcessData(data []int64) {
//	    sort.Sort(data) // In-place ascending sort
//	}
//
//	func SortWindow(buf []int64, first, last int) {
//	    sort.Quicksort(buf, first, last) // Only buf[first:last] is touched
//	}
//
// # Bounds
//
// The first/last arguments are trusted. Invalid bounds are programming errors
// and surface as index-out-of-range panics, which this package never recovers.
package sort
