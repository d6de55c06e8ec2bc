package snapshot

import "time"

// Snapshot is the periodically persisted daemon state: the point up to
// which the journal may be truncated, the cooldown carried across a
// restart, and a dump of the candidate registry for inspection.
type Snapshot struct {
	Seq           uint64
	Created       time.Time
	CooldownUntil int64
	Kills         uint64
	Candidates    []Entry
}

type Entry struct {
	PID         int
	Comm        string
	Score       int
	DeathMarked bool
}
