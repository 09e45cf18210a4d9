package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/btree-query-bench/bmark/cli"
	"github.com/btree-query-bench/bmark/index/btree"
	"github.com/sirupsen/logrus"
)

var (
	degree      *int
	seedRecords *int
	check       *bool
	verbose     *bool
)

func main() {
	setupFlags()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	opts := []btree.Option{btree.WithLogger(log)}
	if *check {
		opts = append(opts, btree.WithValidation())
	}

	tree, err := btree.New[string](*degree, opts...)
	if err != nil {
		log.WithError(err).Fatal("create tree")
	}

	demo := cli.NewCli(bufio.NewScanner(os.Stdin), os.Stdout, tree)
	if *seedRecords > 0 {
		n := demo.Seed(*seedRecords)
		log.WithField("keys", n).Info("seeded")
	}
	demo.Start()
}

func setupFlags() {
	degree = flag.Int("t", 2, "minimum degree of the tree.")
	seedRecords = flag.Int("seed", 0, "Seed the tree with this many words created with go-faker.")
	check = flag.Bool("check", false, "Validate the tree invariants after every change.")
	verbose = flag.Bool("v", false, "Log every split, merge and borrow.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
