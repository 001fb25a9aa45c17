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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/dataset"
	"github.com/ajroetker/go-sortbench/internal/config"
	"github.com/ajroetker/go-sortbench/internal/hostinfo"
	"github.com/ajroetker/go-sortbench/internal/logutil"
	"github.com/ajroetker/go-sortbench/report"
)

type flags struct {
	configFile string
	list       bool
	cfg        config.Config
}

func newRootCommand() *cobra.Command {
	f := &flags{cfg: config.Default()}
	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Measure hybrid quicksort scaling across power-of-two sizes",
		Long: "Sort consecutive windows of a random permutation for every power-of-two size\n" +
			"from min-size to max-size and report the time per element and per element per log2(size).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.list {
				return listAlgorithms(cmd.OutOrStdout())
			}
			cfg, err := loadConfig(f.configFile, cmd.Flags(), &f.cfg)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configFile, "config", "c", "", "TOML configuration file")
	fs.BoolVar(&f.list, "list", false, "list the available algorithms and exit")
	fs.IntVar(&f.cfg.MinSize, "min-size", f.cfg.MinSize, "smallest size class (power of two)")
	fs.IntVar(&f.cfg.MaxSize, "max-size", f.cfg.MaxSize, "source array length and largest size class (power of two)")
	fs.Uint64Var(&f.cfg.Seed, "seed", f.cfg.Seed, "shuffle seed, 0 picks a random one")
	fs.StringVarP(&f.cfg.Algorithm, "algorithm", "a", f.cfg.Algorithm, "sort to measure: "+strings.Join(bench.Names(), ", "))
	fs.StringVarP(&f.cfg.Format, "format", "f", f.cfg.Format, "report format: text or gobench")
	fs.StringVar(&f.cfg.Baseline, "baseline", f.cfg.Baseline, "gobench file of a previous run to compare against")
	fs.StringVar(&f.cfg.Log.Level, "log-level", f.cfg.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&f.cfg.Log.Format, "log-format", f.cfg.Log.Format, "log format: console or json")
	fs.StringVar(&f.cfg.Log.Filename, "log-file", f.cfg.Log.Filename, "write logs to a rotating file instead of stderr")
	return cmd
}

// loadConfig reads the configuration file, if any, then applies the flags
// that were set explicitly on the command line.
func loadConfig(path string, fs *pflag.FlagSet, fromFlags *config.Config) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	overrides := map[string]func(){
		"min-size":   func() { cfg.MinSize = fromFlags.MinSize },
		"max-size":   func() { cfg.MaxSize = fromFlags.MaxSize },
		"seed":       func() { cfg.Seed = fromFlags.Seed },
		"algorithm":  func() { cfg.Algorithm = fromFlags.Algorithm },
		"format":     func() { cfg.Format = fromFlags.Format },
		"baseline":   func() { cfg.Baseline = fromFlags.Baseline },
		"log-level":  func() { cfg.Log.Level = fromFlags.Log.Level },
		"log-format": func() { cfg.Log.Format = fromFlags.Log.Format },
		"log-file":   func() { cfg.Log.Filename = fromFlags.Log.Filename },
	}
	fs.Visit(func(flag *pflag.Flag) {
		if apply, ok := overrides[flag.Name]; ok {
			apply()
		}
	})
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func run(out io.Writer, cfg config.Config) error {
	logger, err := logutil.NewLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	algo, err := bench.Lookup(cfg.Algorithm)
	if err != nil {
		return err
	}

	var base report.Baseline
	if cfg.Baseline != "" {
		if base, err = report.LoadBaseline(cfg.Baseline); err != nil {
			return err
		}
	}

	host := hostinfo.Detect()
	logger.Info("generating source array",
		host.Field(),
		zap.Int("elements", cfg.MaxSize),
		zap.Uint64("seed", cfg.Seed))
	source := dataset.Permutation(cfg.MaxSize, dataset.NewRand(cfg.Seed))

	h := bench.New(source, bench.WithAlgorithm(algo), bench.WithLogger(logger))
	rows := report.NewRows(h.Sweep(cfg.MinSize, cfg.MaxSize))

	if strings.EqualFold(cfg.Format, config.FormatGoBench) {
		err = report.WriteGoBench(out, host, algo.BenchName, rows)
	} else {
		err = report.WriteText(out, algo.BenchName, rows, base)
	}
	return errors.Wrap(err, "failed to write report")
}

func listAlgorithms(out io.Writer) error {
	for _, a := range bench.Algorithms() {
		if _, err := fmt.Fprintf(out, "%-18s %s\n", a.Name, a.Description); err != nil {
			return err
		}
	}
	return nil
}
