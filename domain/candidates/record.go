package candidates

import "sync"

// ScoreAdjMax is the top of the eligibility score scale. Scores run
// 0..ScoreAdjMax; higher means more acceptable to kill.
const ScoreAdjMax = 1000

// Flags is a consistent view of a record's mutable lifecycle state.
type Flags struct {
	Exiting     bool
	DeathMarked bool
	MemReleased bool
	FatalSignal bool
}

// Record is one killable candidate. It is a non-owning view of a host
// process: identity and score live here, the resident footprint is read
// from the process table at selection time.
//
// Score is immutable for the lifetime of a record; a score change is a
// remove plus an insert of a fresh record.
type Record struct {
	PID   int
	Comm  string
	Score int

	// KernelOwned records are never killable. Set at insert, never changed.
	KernelOwned bool

	mu          sync.Mutex
	exiting     bool
	deathMarked bool
	memReleased bool
	fatalSignal bool

	next *Record
	prev *Record
}

// Reset reinitializes a pooled record for reuse.
func (r *Record) Reset(pid int, comm string, score int, kernelOwned bool) {
	r.PID = pid
	r.Comm = comm
	r.Score = score
	r.KernelOwned = kernelOwned
	r.exiting = false
	r.deathMarked = false
	r.memReleased = false
	r.fatalSignal = false
	r.next = nil
	r.prev = nil
}

// Flags returns all lifecycle flags under one lock acquisition.
func (r *Record) Flags() Flags {
	r.mu.Lock()
	f := Flags{
		Exiting:     r.exiting,
		DeathMarked: r.deathMarked,
		MemReleased: r.memReleased,
		FatalSignal: r.fatalSignal,
	}
	r.mu.Unlock()
	return f
}

func (r *Record) SetExiting(v bool) {
	r.mu.Lock()
	r.exiting = v
	r.mu.Unlock()
}

// MarkDeath flags the record as having a kill delivered and pending
// reclamation of its memory.
func (r *Record) MarkDeath() {
	r.mu.Lock()
	r.deathMarked = true
	r.mu.Unlock()
}

func (r *Record) DeathMarked() bool {
	r.mu.Lock()
	v := r.deathMarked
	r.mu.Unlock()
	return v
}

// SetMemReleased marks the record's memory context as gone. Such a record
// contributes nothing reclaimable and must never be selected.
func (r *Record) SetMemReleased() {
	r.mu.Lock()
	r.memReleased = true
	r.mu.Unlock()
}

func (r *Record) MemReleased() bool {
	r.mu.Lock()
	v := r.memReleased
	r.mu.Unlock()
	return v
}

func (r *Record) SetFatalSignal(v bool) {
	r.mu.Lock()
	r.fatalSignal = v
	r.mu.Unlock()
}
