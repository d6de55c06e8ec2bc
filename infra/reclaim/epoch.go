package reclaim

import (
	"sync/atomic"

	"lowmemd/domain/candidates"
)

const inactive = ^uint64(0)

// Clock is the monotonically increasing reclamation epoch.
type Clock struct {
	epoch atomic.Uint64
}

func (c *Clock) Now() uint64 {
	return c.epoch.Load()
}

// Reader marks when a scan entered its read section.
type Reader struct {
	clock *Clock
	epoch atomic.Uint64
}

func NewReader(c *Clock) *Reader {
	r := &Reader{clock: c}
	r.epoch.Store(inactive)
	return r
}

func (r *Reader) Enter() {
	r.epoch.Store(r.clock.Now())
}

func (r *Reader) Exit() {
	r.epoch.Store(inactive)
}

func (r *Reader) Value() uint64 {
	return r.epoch.Load()
}

// AdvanceAndReclaim advances the epoch and pools retired records that no
// reader can still be standing on. Called periodically from one goroutine.
// It only ever peeks-then-pops: held-back items stay in place, so the
// retiring goroutine remains the ring's sole writer.
func AdvanceAndReclaim(c *Clock, ring *Ring, pool *RecordPool, readers ...*Reader) {
	c.epoch.Add(1)
	min := minReaderEpoch(readers...)

	for {
		it, ok := ring.Peek()
		if !ok {
			return
		}

		// Not safe yet; FIFO order means nothing newer is either.
		if min != inactive && it.epoch >= min {
			return
		}

		if _, ok := ring.Dequeue(); !ok {
			return
		}
		pool.Put(it.rec)
	}
}

// Retire hands a record removed from the registry to the reclaimer,
// stamped with the current epoch.
func Retire(c *Clock, ring *Ring, rec *candidates.Record) {
	_ = ring.Enqueue(retired{rec: rec, epoch: c.Now()})
}

func minReaderEpoch(rs ...*Reader) uint64 {
	min := inactive
	for _, r := range rs {
		if r == nil {
			continue
		}
		v := r.Value()
		if v < min {
			min = v
		}
	}
	return min
}
