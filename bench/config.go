package bench

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Config drives a benchmark run. The zero value is not usable, start
// from DefaultConfig.
type Config struct {
	// N is the number of keys loaded into every structure.
	N int
	// Degrees lists the B-tree minimum degrees to sweep.
	Degrees []int
	// Seed makes the workloads reproducible. Every structure replays the
	// same operation sequence.
	Seed int64

	// LSM adds the Pebble baseline, List the sorted-slice baseline.
	LSM  bool
	List bool

	// Out is the CSV path, Plot the PNG path. Empty disables the output.
	Out  string
	Plot string
}

func DefaultConfig() Config {
	return Config{
		N:       1000000,
		Degrees: []int{8, 32, 128},
		Seed:    1,
		LSM:     true,
		Out:     "final_thesis_results.csv",
		Plot:    "final_thesis_results.png",
	}
}

func (c Config) Validate() error {
	if c.N < 2 {
		return errors.Newf("bench: need at least 2 keys, got %d", c.N)
	}
	if len(c.Degrees) == 0 {
		return errors.New("bench: no degrees to test")
	}
	for _, d := range c.Degrees {
		if d < 2 {
			return errors.Newf("bench: degree %d below 2", d)
		}
	}
	return nil
}

// ParseDegrees parses a comma separated list such as "8,32,128".
func ParseDegrees(s string) ([]int, error) {
	var degrees []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "bench: degree %q", f)
		}
		degrees = append(degrees, d)
	}
	return degrees, nil
}
