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

// Command sortbench measures how the hybrid quicksort scales with input size.
//
// Usage:
//
//	sortbench                                  # 8 .. 16Mi elements, text table
//	sortbench --max-size 1048576 --seed 42     # smaller, reproducible run
//	sortbench --format gobench > base.txt      # save in `go test -bench` format
//	sortbench --baseline base.txt              # add a delta column against base.txt
//	sortbench --algorithm stdlib               # measure slices.Sort instead
//	sortbench --config sortbench.toml          # read settings from a TOML file
//
// The program builds one random permutation of max-size integers, then for
// every power-of-two size class sorts consecutive windows of it until the
// whole array has been covered, and prints one row per size class:
//
//	size   nanoseconds per element   nanoseconds per element / log2(size)
//
// The report goes to stdout and logs go to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
