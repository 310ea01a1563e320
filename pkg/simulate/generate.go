package simulate

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/dmitrymomot/cachemapset/pkg/validator"
)

// zipfS controls the skew of generated keys; larger is more skewed.
const zipfS = 1.1

// deleteEvery is the mean distance between generated deletes.
const deleteEvery = 50

// Generate builds a read-through trace of n operations over keys distinct
// keys. Keys follow a Zipf distribution; roughly one operation in fifty is a
// delete. The same seed always yields the same trace.
func Generate(n, keys int, capacity float64, seed uint64) (Trace, error) {
	if err := validator.Apply(
		validator.MinNum("ops", n, 1),
		validator.MinNum("keys", keys, 1),
	); err != nil {
		return Trace{}, err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	zipf := rand.NewZipf(rng, zipfS, 1, uint64(keys-1))

	ops := make([]Op, 0, n)
	for range n {
		key := "key-" + strconv.FormatUint(zipf.Uint64(), 10)
		if rng.IntN(deleteEvery) == 0 {
			ops = append(ops, Op{Kind: OpDelete, Key: key})
			continue
		}
		ops = append(ops, Op{Kind: OpGet, Key: key})
	}

	return Trace{
		Name:        fmt.Sprintf("zipf-%d-%d-%d", n, keys, seed),
		Capacity:    capacity,
		ReadThrough: true,
		Ops:         ops,
	}, nil
}
