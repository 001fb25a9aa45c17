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

// Package report turns benchmark samples into the printed table: one row per
// size class with the time per element and that time divided by log2(size).
// For an O(n log n) sort the last column levels off as the size grows.
package report

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/internal/hostinfo"
)

// Row is one size class of the report.
type Row struct {
	// Size is the window length.
	Size int

	// Windows is how many windows were sorted.
	Windows int

	// Time is nanoseconds per sorted element.
	Time int64

	// PerLog2 is nanoseconds per sorted element divided by log2(Size).
	PerLog2 float64

	// NsPerOp is nanoseconds per window sort.
	NsPerOp float64
}

// NewRow normalizes a sample by the number of elements it sorted.
func NewRow(s bench.Sample) Row {
	row := Row{Size: s.Size, Windows: s.Windows}
	elements := s.Elements()
	if elements == 0 {
		return row
	}
	ns := s.Elapsed.Nanoseconds()
	row.Time = ns / int64(elements)
	if s.Size > 1 {
		row.PerLog2 = float64(ns) / (float64(elements) * math.Log2(float64(s.Size)))
	}
	row.NsPerOp = float64(ns) / float64(s.Windows)
	return row
}

// NewRows converts samples in order.
func NewRows(samples []bench.Sample) []Row {
	rows := make([]Row, len(samples))
	for i, s := range samples {
		rows[i] = NewRow(s)
	}
	return rows
}

// BenchmarkName returns the Go benchmark name of a size class,
// e.g. "BenchmarkQuicksort/size=8".
func BenchmarkName(benchName string, size int) string {
	return fmt.Sprintf("Benchmark%s/size=%d", benchName, size)
}

// WriteText writes the header and one line per row. If base is not nil, a
// delta column compares ns/op with the baseline run of the same benchmark.
func WriteText(w io.Writer, benchName string, rows []Row, base Baseline) error {
	p := message.NewPrinter(language.English)
	var errs []error
	printf := func(format string, args ...any) {
		if _, err := p.Fprintf(w, format, args...); err != nil {
			errs = append(errs, err)
		}
	}

	printf("%14s %8s %8s", "size", "time", "log2")
	if base != nil {
		printf(" %9s", "delta")
	}
	printf("\n")

	for _, row := range rows {
		printf("%14d %8d %8.2f", row.Size, row.Time, row.PerLog2)
		if base != nil {
			if delta, ok := base.Delta(BenchmarkName(benchName, row.Size), row.NsPerOp); ok {
				printf(" %+8.1f%%", delta)
			} else {
				printf(" %9s", "-")
			}
		}
		printf("\n")
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// WriteGoBench writes rows in the `go test -bench` output format, so a run
// can be saved and compared with benchstat or passed back as a baseline.
func WriteGoBench(w io.Writer, host hostinfo.Info, benchName string, rows []Row) error {
	if _, err := fmt.Fprintf(w, "goos: %s\ngoarch: %s\npkg: github.com/ajroetker/go-sortbench/bench\ncpu: %s\n",
		host.GOOS, host.GOARCH, host.CPU()); err != nil {
		return err
	}
	for _, row := range rows {
		line := fmt.Sprintf("%s\t%8d\t%12.2f ns/op", BenchmarkName(benchName, row.Size), row.Windows, row.NsPerOp)
		if row.NsPerOp > 0 {
			mbPerSec := float64(row.Size*8) * 1e3 / row.NsPerOp
			line += fmt.Sprintf("\t%10.2f MB/s", mbPerSec)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
