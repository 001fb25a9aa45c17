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

// Package config holds the sortbench configuration, loaded from an optional
// TOML file and overridden by command-line flags.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/ajroetker/go-sortbench/internal/logutil"
)

const (
	// DefaultMinSize is the smallest size class.
	DefaultMinSize = 8

	// DefaultMaxSize is the source array length and the largest size class.
	DefaultMaxSize = 16 << 20

	// DefaultAlgorithm is the hybrid quicksort.
	DefaultAlgorithm = "quicksort"
)

// Report formats.
const (
	FormatText    = "text"
	FormatGoBench = "gobench"
)

// Config is the sortbench configuration.
type Config struct {
	// MinSize is the first size class; a power of two, at least 2.
	MinSize int `toml:"min-size"`

	// MaxSize is the source array length and the last size class; a power of two.
	MaxSize int `toml:"max-size"`

	// Seed seeds the shuffle. 0 means a fresh random seed per run.
	Seed uint64 `toml:"seed"`

	// Algorithm names the sort to measure, see bench.Algorithms.
	Algorithm string `toml:"algorithm"`

	// Format is text or gobench.
	Format string `toml:"format"`

	// Baseline is an optional file with a previous gobench report to compare against.
	Baseline string `toml:"baseline"`

	Log logutil.LogConfig `toml:"log"`
}

// Default returns the configuration of a plain run: 8..16Mi elements,
// hybrid quicksort, text report.
func Default() Config {
	return Config{
		MinSize:   DefaultMinSize,
		MaxSize:   DefaultMaxSize,
		Algorithm: DefaultAlgorithm,
		Format:    FormatText,
		Log:       logutil.DefaultLogConfig(),
	}
}

// Load decodes the TOML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config from %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Newf("unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}

// Validate checks sizes, format and logging settings.
func (c *Config) Validate() error {
	if c.MinSize < 2 {
		return errors.Newf("min-size %d must be at least 2", c.MinSize)
	}
	if !isPowerOfTwo(c.MinSize) {
		return errors.Newf("min-size %d is not a power of two", c.MinSize)
	}
	if !isPowerOfTwo(c.MaxSize) {
		return errors.Newf("max-size %d is not a power of two", c.MaxSize)
	}
	if c.MinSize > c.MaxSize {
		return errors.Newf("min-size %d exceeds max-size %d", c.MinSize, c.MaxSize)
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatGoBench:
	default:
		return errors.Newf("unsupported format %q", c.Format)
	}
	if c.Algorithm == "" {
		return errors.New("algorithm must not be empty")
	}
	return errors.Wrap(c.Log.Validate(), "log")
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
