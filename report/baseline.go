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

package report

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/benchmark/parse"
)

// Baseline maps Go benchmark names to ns/op from an earlier run.
type Baseline map[string]float64

// ReadBaseline parses `go test -bench` style output. Lines that are not
// benchmark results are ignored; for repeated names the first result wins.
func ReadBaseline(r io.Reader) (Baseline, error) {
	set, err := parse.ParseSet(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse baseline")
	}
	base := make(Baseline, len(set))
	for name, results := range set {
		for _, b := range results {
			if b.Measured&parse.NsPerOp != 0 {
				base[name] = b.NsPerOp
				break
			}
		}
	}
	return base, nil
}

// LoadBaseline reads a baseline file.
func LoadBaseline(path string) (Baseline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open baseline %s", path)
	}
	defer f.Close()
	return ReadBaseline(f)
}

// Delta returns the change of nsPerOp relative to the baseline, in percent.
// Positive means slower than the baseline.
func (b Baseline) Delta(name string, nsPerOp float64) (float64, bool) {
	old, ok := b[name]
	if !ok || old == 0 {
		return 0, false
	}
	return (nsPerOp - old) / old * 100, true
}
