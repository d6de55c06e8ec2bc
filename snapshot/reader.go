package snapshot

import "lowmemd/infra/reclaim"

/*
Snapshot Reader

This is a thin adapter over reclaim.Reader.
Its only responsibility is to clearly mark:
- when a registry dump begins
- when it ends

Everything else (epoching, reclamation) is handled elsewhere.
*/

type Reader struct {
	epoch *reclaim.Reader
}

func NewReader(c *reclaim.Clock) *Reader {
	return &Reader{
		epoch: reclaim.NewReader(c),
	}
}

// Begin marks the start of a consistent registry dump.
func (r *Reader) Begin() {
	r.epoch.Enter()
}

// End marks the end of a dump.
func (r *Reader) End() {
	r.epoch.Exit()
}

// Epoch exposes the underlying epoch for reclaimers.
func (r *Reader) Epoch() *reclaim.Reader {
	return r.epoch
}
