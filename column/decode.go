package column

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"code.hybscloud.com/atomix"
	"github.com/shabbyrobe/go-decswar"
)

// DecodeFunc converts one field.
type DecodeFunc[T any] func(b []byte) (T, error)

// minRowsPerWorker stops DecodeParallel from starting goroutines for work
// smaller than their startup cost.
const minRowsPerWorker = 256

const noRow = math.MaxUint64

func checkDst(c Column, dstLen int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if dstLen < c.Len() {
		return fmt.Errorf("column: destination has %d slots for %d rows", dstLen, c.Len())
	}
	return nil
}

// Decode converts every field of c into dst, stopping at the first field that
// fails. The error is a *RowError; the rows before it have been written.
func Decode[T any](c Column, dst []T, fn DecodeFunc[T]) error {
	if err := checkDst(c, len(dst)); err != nil {
		return err
	}
	for i, n := 0, c.Len(); i < n; i++ {
		v, err := fn(c.Field(i))
		if err != nil {
			return &RowError{Row: i, Err: err}
		}
		dst[i] = v
	}
	return nil
}

// DecodeParallel is Decode spread over up to workers goroutines, each taking
// a contiguous range of rows. If workers is <= 0, GOMAXPROCS is used.
//
// The result is the same as Decode's: the error names the lowest failing row
// and every row below it has been written. Rows above it may or may not have
// been written.
func DecodeParallel[T any](c Column, dst []T, workers int, fn DecodeFunc[T]) error {
	if err := checkDst(c, len(dst)); err != nil {
		return err
	}

	n := c.Len()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if most := n / minRowsPerWorker; workers > most {
		workers = most
	}
	if workers <= 1 {
		return Decode(c, dst, fn)
	}

	per := (n + workers - 1) / workers
	errs := make([]*RowError, workers)

	var firstBad atomix.Uint64
	firstBad.StoreRelaxed(noRow)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := w*per, min((w+1)*per, n)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				// A lower row has already failed; nothing from here on can
				// change the result.
				if uint64(i) > firstBad.LoadAcquire() {
					return
				}
				v, err := fn(c.Field(i))
				if err != nil {
					errs[w] = &RowError{Row: i, Err: err}
					lowerTo(&firstBad, uint64(i))
					return
				}
				dst[i] = v
			}
		}(w, lo, hi)
	}
	wg.Wait()

	bad := firstBad.LoadAcquire()
	if bad == noRow {
		return nil
	}
	return errs[int(bad)/per]
}

// lowerTo sets v to row if row is lower than its current value.
func lowerTo(v *atomix.Uint64, row uint64) {
	for {
		cur := v.LoadAcquire()
		if row >= cur || v.CompareAndSwapAcqRel(cur, row) {
			return
		}
	}
}

// DecodeInt64 decodes c into dst with decswar.ParseInt64.
func DecodeInt64(c Column, dst []int64, workers int) error {
	return DecodeParallel(c, dst, workers, decswar.ParseInt64)
}

// DecodeUint64 decodes c into dst with decswar.ParseUint64.
func DecodeUint64(c Column, dst []uint64, workers int) error {
	return DecodeParallel(c, dst, workers, decswar.ParseUint64)
}

// DecodeI128 decodes c into dst with decswar.ParseI128.
func DecodeI128(c Column, dst []decswar.I128, workers int) error {
	return DecodeParallel(c, dst, workers, decswar.ParseI128)
}

// DecodeFloat64 decodes fixed-point fields with p, or with a default Parser
// if p is nil.
func DecodeFloat64(c Column, dst []float64, workers int, p *decswar.Parser) error {
	if p == nil {
		p = decswar.NewParser()
	}
	return DecodeParallel(c, dst, workers, p.ParseFloat64)
}
