package reclaim

import (
	"sync"

	"lowmemd/domain/candidates"
)

// RecordPool recycles candidate records between registry generations.
type RecordPool struct {
	p sync.Pool
}

func NewRecordPool() *RecordPool {
	return &RecordPool{
		p: sync.Pool{
			New: func() any { return &candidates.Record{} },
		},
	}
}

// Get returns a record with stale state; callers must Reset it.
func (p *RecordPool) Get() *candidates.Record {
	return p.p.Get().(*candidates.Record)
}

func (p *RecordPool) Put(r *candidates.Record) {
	p.p.Put(r)
}
