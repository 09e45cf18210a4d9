package bench

import (
	"math/rand"

	"github.com/btree-query-bench/bmark/index"
	"github.com/cockroachdb/errors"
)

type WorkloadType string

const (
	Load  WorkloadType = "Load (sequential)"
	OLTP  WorkloadType = "OLTP (90/10)"
	OLAP  WorkloadType = "OLAP (10/90)"
	Churn WorkloadType = "Churn (50/50 insert/delete)"
	Drain WorkloadType = "Drain (delete all)"
)

// ExecuteWorkload runs ops operations of the given mix against idx, with
// keys drawn from [0, keySpace). Load and Drain ignore rnd and walk the
// key space in order instead. Deleting a missing key is part of the
// workload, not a failure.
func ExecuteWorkload(idx index.Set, wType WorkloadType, ops, keySpace int, rnd *rand.Rand) error {
	for i := 0; i < ops; i++ {
		var err error

		switch wType {
		case Load:
			err = idx.Insert(int64(i % keySpace))
		case Drain:
			err = idx.Delete(int64(i % keySpace))
		default:
			choice := rnd.Intn(100)
			key := int64(rnd.Intn(keySpace))

			switch {
			case wType == OLTP && choice < 90, wType == OLAP && choice < 10:
				_, err = idx.Contains(key)
			case wType == Churn && choice < 50:
				err = idx.Delete(key)
			default:
				err = idx.Insert(key)
			}
		}

		if err != nil && !errors.Is(err, index.ErrKeyNotFound) {
			return errors.Wrapf(err, "%s op %d", wType, i)
		}
	}
	return nil
}
