package reclaim

import (
	"sync/atomic"

	"lowmemd/domain/candidates"
)

type retired struct {
	rec   *candidates.Record
	epoch uint64
}

// Ring is a lock-free SPSC ring buffer of retired records: the registry
// sync job produces, the epoch job consumes.
type Ring struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []retired
	mask  uint64
}

func NewRing(size uint64) *Ring {
	if size&(size-1) != 0 {
		panic("reclaim.Ring size must be power of two")
	}
	return &Ring{
		buf:  make([]retired, size),
		mask: size - 1,
	}
}

func (r *Ring) Enqueue(v retired) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = v
	atomic.AddUint64(&r.head, 1)
	return true
}

// Peek returns the oldest retired item without consuming it. Consumer
// side only.
func (r *Ring) Peek() (retired, bool) {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return retired{}, false
	}
	return r.buf[t&r.mask], true
}

func (r *Ring) Dequeue() (retired, bool) {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return retired{}, false
	}
	v := r.buf[t&r.mask]
	r.buf[t&r.mask] = retired{}
	atomic.AddUint64(&r.tail, 1)
	return v, true
}
