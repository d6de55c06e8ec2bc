package candidates

import "sync"

// Registry is the priority-ordered collection of killable candidates.
//
// Structural mutations (insert/remove on process lifecycle events) and scan
// traversal run concurrently. The registry lock guards only individual
// navigation steps — bucket lookup, neighbor hop — never a full walk, so a
// record may appear or disappear while a scan is standing on a sibling.
// A candidate's own mutable flags are guarded by its per-record lock.
type Registry struct {
	mu    sync.Mutex
	tree  *RBTree
	byPID map[int]*Record
}

func NewRegistry() *Registry {
	return &Registry{
		tree:  NewRBTree(),
		byPID: make(map[int]*Record, 1024),
	}
}

// Insert adds a record keyed by its score. Inserting a PID that is already
// present is a no-op returning false; a score change must go through
// Remove plus Insert of a fresh record.
func (g *Registry) Insert(rec *Record) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.byPID[rec.PID]; ok {
		return false
	}
	g.tree.UpsertBucket(rec.Score).Enqueue(rec)
	g.byPID[rec.PID] = rec
	return true
}

// Remove detaches the record for pid and returns it, or nil if absent.
// The caller owns retiring the record; its memory must not be reused until
// concurrent scans have drained past it.
func (g *Registry) Remove(pid int) *Record {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.byPID[pid]
	if !ok {
		return nil
	}
	delete(g.byPID, pid)

	if b := g.tree.FindBucket(rec.Score); b != nil {
		b.Unlink(rec)
		if b.Empty() {
			g.tree.DeleteBucket(b.Score)
		}
	}
	return rec
}

func (g *Registry) Lookup(pid int) *Record {
	g.mu.Lock()
	rec := g.byPID[pid]
	g.mu.Unlock()
	return rec
}

// PIDs returns the ids of every registered candidate, for reconciliation
// against the host process table.
func (g *Registry) PIDs() []int {
	g.mu.Lock()
	pids := make([]int, 0, len(g.byPID))
	for pid := range g.byPID {
		pids = append(pids, pid)
	}
	g.mu.Unlock()
	return pids
}

func (g *Registry) Len() int {
	g.mu.Lock()
	n := len(g.byPID)
	g.mu.Unlock()
	return n
}

// First returns the head of the highest-score bucket, i.e. the most
// dispensable candidate.
func (g *Registry) First() *Record {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := g.tree.MaxBucket()
	if b == nil {
		return nil
	}
	return b.Head()
}

// NextByDecreasingScore returns the record that follows rec in
// most-dispensable-first order: the FIFO successor in rec's bucket, then
// the head of the next lower bucket. rec itself may already have been
// removed; its frozen links and score still lead to a live neighbor.
func (g *Registry) NextByDecreasingScore(rec *Record) *Record {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n := rec.next; n != nil {
		return n
	}
	for b := g.tree.Predecessor(rec.Score); b != nil; b = g.tree.Predecessor(b.Score) {
		if h := b.Head(); h != nil {
			return h
		}
	}
	return nil
}

// IterateByDecreasingScore walks the registry from most killable to least,
// taking the registry lock only per navigation step. fn returning false
// stops the walk. Entries inserted or removed mid-walk may or may not be
// visited; callers must hold a reader epoch so that records removed
// mid-walk stay navigable.
func (g *Registry) IterateByDecreasingScore(fn func(*Record) bool) {
	for rec := g.First(); rec != nil; rec = g.NextByDecreasingScore(rec) {
		if !fn(rec) {
			return
		}
	}
}
