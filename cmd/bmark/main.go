package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/btree-query-bench/bmark/bench"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := bench.DefaultConfig()

	degrees := flag.String("degrees", "8,32,128", "comma separated B-tree minimum degrees to sweep")
	verbose := flag.Bool("v", false, "debug logging, including every split and merge")
	flag.IntVar(&cfg.N, "n", cfg.N, "number of keys loaded into each structure")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "workload random seed")
	flag.BoolVar(&cfg.LSM, "lsm", cfg.LSM, "include the in-memory Pebble baseline")
	flag.BoolVar(&cfg.List, "list", cfg.List, "include the sorted slice baseline (slow for large -n)")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "CSV output path, empty to disable")
	flag.StringVar(&cfg.Plot, "plot", cfg.Plot, "latency chart output path (.png, .svg, .pdf), empty to disable")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "\nB-tree benchmark\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var err error
	cfg.Degrees, err = bench.ParseDegrees(*degrees)
	if err != nil {
		log.WithError(err).Fatal("bad -degrees")
	}

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("benchmark failed")
	}
	log.Info("benchmark complete, data ready for analysis")
}

func run(cfg bench.Config, log *logrus.Logger) (err error) {
	var out *os.File
	if cfg.Out != "" {
		out, err = os.Create(cfg.Out)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := out.Close(); err == nil {
				err = cerr
			}
		}()
	}

	var results []bench.BenchResult
	if out != nil {
		results, err = bench.Run(cfg, out, log)
	} else {
		results, err = bench.Run(cfg, nil, log)
	}
	if err != nil {
		return err
	}

	if cfg.Plot != "" {
		if err := bench.Plot(results, cfg.Plot); err != nil {
			return err
		}
		log.WithField("path", cfg.Plot).Info("plot written")
	}
	return nil
}
