package bench

import (
	"encoding/csv"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/btree-query-bench/bmark/index"
	"github.com/btree-query-bench/bmark/index/btree"
	"github.com/btree-query-bench/bmark/index/listindex"
	"github.com/btree-query-bench/bmark/index/lsm"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

type structure struct {
	name string
	conf string
	open func() (index.Set, error)
}

// Run sweeps every configured structure through the workloads, writes
// one CSV row per measurement to w (when not nil) and returns the
// results. It fails if a structure errors or if the structures disagree
// on the number of keys left after the randomized workloads.
func Run(cfg Config, w io.Writer, log logrus.FieldLogger) ([]BenchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var cw *csv.Writer
	if w != nil {
		cw = csv.NewWriter(w)
		if err := cw.Write(Header); err != nil {
			return nil, errors.Wrap(err, "bench: write header")
		}
	}

	var structures []structure
	for _, d := range cfg.Degrees {
		structures = append(structures, structure{"B-Tree", strconv.Itoa(d), func() (index.Set, error) {
			return NewBTreeSet(d, btree.WithLogger(log.WithField("degree", d)))
		}})
	}
	if cfg.LSM {
		structures = append(structures, structure{"LSM-Tree", "pebble-mem", func() (index.Set, error) {
			return lsm.OpenMem(log.WithField("structure", "pebble"))
		}})
	}
	if cfg.List {
		structures = append(structures, structure{"SortedList", "-", func() (index.Set, error) {
			return listindex.NewListIndex(), nil
		}})
	}

	var (
		results []BenchResult
		lens    = map[string]int{}
	)

	for _, s := range structures {
		log.WithFields(logrus.Fields{"structure": s.name, "config": s.conf, "n": cfg.N}).Info("testing")

		idx, err := s.open()
		if err != nil {
			return results, err
		}

		res, n, err := runSuite(cfg, s, idx)
		if cerr := idx.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "bench: close %s", s.name)
		}
		results = append(results, res...)
		if err != nil {
			return results, err
		}

		lens[s.name+"/"+s.conf] = n

		if cw != nil {
			for _, r := range res {
				if err := Record(cw, r); err != nil {
					return results, errors.Wrap(err, "bench: record")
				}
			}
		}
	}

	if cw != nil {
		cw.Flush()
		if err := cw.Error(); err != nil {
			return results, errors.Wrap(err, "bench: flush")
		}
	}

	return results, checkLens(lens)
}

// runSuite measures one structure. It returns the number of keys left
// after the randomized workloads, before the final drain.
func runSuite(cfg Config, s structure, idx index.Set) ([]BenchResult, int, error) {
	var results []BenchResult
	rnd := rand.New(rand.NewSource(cfg.Seed))

	measure := func(wType WorkloadType, ops int, footprint bool) error {
		start := time.Now()
		if err := ExecuteWorkload(idx, wType, ops, cfg.N, rnd); err != nil {
			return errors.Wrapf(err, "bench: %s/%s", s.name, s.conf)
		}
		latency := time.Since(start).Nanoseconds() / int64(ops)

		stats := GetDetailedMem()
		r := BenchResult{
			Name:      s.name,
			Config:    s.conf,
			Operation: string(wType),
			LatencyNs: latency,
			MemMB:     stats.AllocMB,
		}
		if footprint {
			r.Objects = stats.HeapObjects
		}
		results = append(results, r)
		return nil
	}

	// Pure insert (initial load), then the memory footprint in steady state.
	if err := measure(Load, cfg.N, true); err != nil {
		return results, 0, err
	}
	for _, wType := range []WorkloadType{OLTP, OLAP, Churn} {
		if err := measure(wType, cfg.N/2, false); err != nil {
			return results, 0, err
		}
	}

	n := idx.Len()
	if bs, ok := idx.(*BTreeSet); ok {
		if err := bs.Validate(); err != nil {
			return results, n, errors.Wrapf(err, "bench: %s/%s", s.name, s.conf)
		}
	}

	if err := measure(Drain, cfg.N, false); err != nil {
		return results, n, err
	}
	if idx.Len() != 0 {
		return results, n, errors.Newf("bench: %s/%s holds %d keys after drain", s.name, s.conf, idx.Len())
	}

	return results, n, nil
}

func checkLens(lens map[string]int) error {
	var (
		first string
		want  = -1
	)
	for name, n := range lens {
		if want < 0 {
			first, want = name, n
			continue
		}
		if n != want {
			return errors.Newf("bench: %s ended with %d keys, %s with %d", name, n, first, want)
		}
	}
	return nil
}
