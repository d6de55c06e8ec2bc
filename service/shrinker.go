package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"lowmemd/config"
	"lowmemd/domain/candidates"
	"lowmemd/domain/pressure"
	"lowmemd/infra/journal"
	"lowmemd/infra/memstats"
	"lowmemd/infra/outbox"
	"lowmemd/infra/proctable"
	"lowmemd/infra/reclaim"
	"lowmemd/infra/sequence"
	"lowmemd/snapshot"
)

/*
Shrinker is the ONLY kill entry point into the system.

All coordination between:
- domain (candidates, pressure)
- infra (reclaim, journal, outbox, proctable, memstats)
- snapshot
happens here.
*/

const (
	// How long a delivered SIGKILL is trusted to be freeing memory
	// before another victim may be picked.
	killCooldown = time.Second

	// Pause after a kill (and after yielding to one in flight) so the
	// host can start tearing the victim down.
	settleWait = 20 * time.Millisecond
)

type Shrinker struct {
	log      *zap.Logger
	params   *config.Store
	registry *candidates.Registry
	source   memstats.Source
	procs    proctable.Table
	journal  *journal.Journal
	outbox   *outbox.Outbox
	seq      *sequence.Sequencer

	clock *reclaim.Clock
	ring  *reclaim.Ring
	pool  *reclaim.RecordPool

	scanEpoch *reclaim.Reader
	snap      *snapshot.Reader

	// At most one scan walks the registry at a time. Waiters give up
	// when their context is cancelled instead of queueing forever.
	scanMu *semaphore.Weighted

	// Unix nanos until which the last kill is presumed in flight.
	deadline atomic.Int64

	kills atomic.Uint64
}

// NewShrinker wires all dependencies.
// No globals. No magic.
func NewShrinker(
	log *zap.Logger,
	params *config.Store,
	registry *candidates.Registry,
	source memstats.Source,
	procs proctable.Table,
	jnl *journal.Journal,
	ob *outbox.Outbox,
	seq *sequence.Sequencer,
	clock *reclaim.Clock,
	ring *reclaim.Ring,
	pool *reclaim.RecordPool,
) *Shrinker {
	return &Shrinker{
		log:       log,
		params:    params,
		registry:  registry,
		source:    source,
		procs:     procs,
		journal:   jnl,
		outbox:    ob,
		seq:       seq,
		clock:     clock,
		ring:      ring,
		pool:      pool,
		scanEpoch: reclaim.NewReader(clock),
		snap:      snapshot.NewReader(clock),
		scanMu:    semaphore.NewWeighted(1),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Shrink is one reclaim pass. With nrToScan <= 0 it is a probe: it
// refines the pressure sample and reports the reclaimable estimate
// without taking the scan lock or touching the registry. With a
// positive nrToScan it selects and kills at most one victim.
//
// The returned value is the estimate of reclaimable pages, with the
// victim's footprint already deducted when a kill was issued.
func (s *Shrinker) Shrink(ctx context.Context, nrToScan int64, alloc pressure.AllocContext) int64 {
	p := s.params.Snapshot()

	// A context already condemned to die must not trigger another
	// kill; re-assert its mark and let it finish exiting.
	if lead := s.registry.Lookup(alloc.Initiator); lead != nil {
		f := lead.Flags()
		if f.Exiting && f.DeathMarked {
			lead.MarkDeath()
			return 0
		}
	}

	locked := false
	if nrToScan > 0 {
		if err := s.scanMu.Acquire(ctx, 1); err != nil {
			return 0
		}
		locked = true
	}
	unlock := func() {
		if locked {
			s.scanMu.Release(1)
			locked = false
		}
	}

	counters, err := s.source.Counters()
	if err != nil {
		s.log.Warn("memory counters unavailable", zap.Error(err))
		unlock()
		return 0
	}
	zones, err := s.source.Zones()
	if err != nil {
		zones = nil
	}

	rawFree := counters.Free
	rawFile := counters.FilePages - counters.Shmem
	sample := pressure.Refine(rawFree, rawFile, zones, alloc, p.FastRun)
	minScore, fired := p.Table.MinScore(sample)

	rem := counters.Reclaimable()

	if nrToScan > 0 {
		s.log.Debug("shrink invoked",
			zap.Int64("nr_to_scan", nrToScan),
			zap.Int64("other_free", sample.OtherFree),
			zap.Int64("other_file", sample.OtherFile),
			zap.Int("min_score", minScore),
			zap.Bool("fired", fired))
	}

	if nrToScan <= 0 || !fired {
		unlock()
		return rem
	}

	victim, footprint, yield := s.selectVictim(alloc, minScore)

	if yield {
		unlock()
		// Back off while the in-flight kill lands. The lock is
		// already released; an interrupted pause leaks nothing.
		if victim == nil || victim.PID != alloc.Initiator {
			sleepCtx(ctx, settleWait)
		}
		return 0
	}

	if victim == nil {
		unlock()
		return rem
	}

	s.kill(victim, footprint, sample)
	rem -= footprint

	// Hold the scan lock through the settle pause so the next scan
	// observes the cooldown rather than racing the teardown.
	sleepCtx(ctx, settleWait)
	unlock()
	return rem
}

// selectVictim walks the registry from the highest score band down and
// picks the largest process in the most killable band at or above
// minScore. It returns yield=true when a previous kill is still within
// its cooldown, in which case the caller backs off empty-handed.
func (s *Shrinker) selectVictim(alloc pressure.AllocContext, minScore int) (victim *candidates.Record, footprint int64, yield bool) {
	s.scanEpoch.Enter()
	defer s.scanEpoch.Exit()

	cooling := time.Now().UnixNano() <= s.deadline.Load()

	s.registry.IterateByDecreasingScore(func(rec *candidates.Record) bool {
		if rec.KernelOwned {
			return true
		}

		f := rec.Flags()
		if f.MemReleased {
			return true
		}

		if cooling && f.DeathMarked {
			if rec.PID == alloc.Initiator {
				rec.MarkDeath()
			}
			victim, footprint, yield = rec, 0, true
			return false
		}

		// Descending walk: once below the threshold nothing later
		// qualifies either.
		if rec.Score < minScore {
			return false
		}
		if victim != nil && rec.Score < victim.Score {
			return false
		}

		if f.FatalSignal || (f.Exiting && f.DeathMarked) {
			s.log.Info("skip slow-dying process",
				zap.Int("pid", rec.PID),
				zap.String("comm", rec.Comm))
			return true
		}

		size, err := s.procs.ResidentPages(rec.PID)
		if err != nil || size <= 0 {
			return true
		}

		// Same band: prefer the bigger footprint.
		if victim != nil && size <= footprint {
			return true
		}

		victim, footprint = rec, size
		s.log.Info("select candidate",
			zap.Int("pid", rec.PID),
			zap.String("comm", rec.Comm),
			zap.Int("score", rec.Score),
			zap.Int64("size", size))
		return true
	})

	if yield {
		return victim, 0, true
	}
	return victim, footprint, false
}

func (s *Shrinker) kill(victim *candidates.Record, footprint int64, sample pressure.Sample) {
	seq := s.seq.Next()
	k := journal.Kill{
		PID:       victim.PID,
		Comm:      victim.Comm,
		Score:     victim.Score,
		Footprint: footprint,
		OtherFree: sample.OtherFree,
		OtherFile: sample.OtherFile,
	}

	// Arm the cooldown before the signal goes out so a concurrent
	// scan entering right now already sees it.
	s.deadline.Store(time.Now().Add(killCooldown).UnixNano())

	// Durable intent first, then the irreversible part.
	if err := s.journal.Append(journal.NewRecord(journal.RecordKill, seq, k.Encode())); err != nil {
		s.log.Error("journal append failed", zap.Uint64("seq", seq), zap.Error(err))
	}
	if err := s.outbox.PutNew(seq, k.Encode()); err != nil {
		s.log.Error("outbox enqueue failed", zap.Uint64("seq", seq), zap.Error(err))
	}

	s.log.Warn("killing process",
		zap.Uint64("seq", seq),
		zap.Int("pid", victim.PID),
		zap.String("comm", victim.Comm),
		zap.Int("score", victim.Score),
		zap.Int64("size", footprint),
		zap.Int64("other_free", sample.OtherFree),
		zap.Int64("other_file", sample.OtherFile))

	if err := s.procs.Kill(victim.PID); err != nil {
		s.log.Error("sigkill failed", zap.Int("pid", victim.PID), zap.Error(err))
	}
	victim.MarkDeath()
	victim.SetFatalSignal(true)
	s.kills.Add(1)
}

// UpdateParams applies a control-plane tuning change: journal it for
// the audit trail, then swap the live snapshot.
func (s *Shrinker) UpdateParams(p config.Params) error {
	for _, score := range p.Table.Scores {
		if score < 0 || score > candidates.ScoreAdjMax {
			return fmt.Errorf("score %d out of range 0..%d", score, candidates.ScoreAdjMax)
		}
	}
	for _, m := range p.Table.MinFree {
		if m < 0 {
			return fmt.Errorf("negative minfree threshold %d", m)
		}
	}

	change := journal.ParamsChange{
		Scores:     p.Table.Scores,
		MinFree:    p.Table.MinFree,
		Cost:       p.Cost,
		DebugLevel: p.DebugLevel,
		FastRun:    p.FastRun,
	}
	if err := s.journal.Append(journal.NewRecord(journal.RecordParams, s.seq.Next(), change.Encode())); err != nil {
		s.log.Error("journal params append failed", zap.Error(err))
	}

	s.params.Update(p)
	s.log.Info("scan parameters updated",
		zap.Ints("scores", p.Table.Scores),
		zap.Int64s("minfree", p.Table.MinFree),
		zap.Int("cost", p.Cost))
	return nil
}

// Params returns the live parameter snapshot.
func (s *Shrinker) Params() config.Params {
	return s.params.Snapshot()
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// ProbeResult is one pressure evaluation without a scan.
type ProbeResult struct {
	RawFree     int64
	RawFile     int64
	Sample      pressure.Sample
	MinScore    int
	Fired       bool
	Reclaimable int64
}

// Probe refines the current pressure sample for the given allocation
// context. It never takes the scan lock and never selects a victim.
func (s *Shrinker) Probe(alloc pressure.AllocContext) (ProbeResult, error) {
	p := s.params.Snapshot()

	counters, err := s.source.Counters()
	if err != nil {
		return ProbeResult{}, err
	}
	zones, err := s.source.Zones()
	if err != nil {
		zones = nil
	}

	rawFree := counters.Free
	rawFile := counters.FilePages - counters.Shmem
	sample := pressure.Refine(rawFree, rawFile, zones, alloc, p.FastRun)
	minScore, fired := p.Table.MinScore(sample)

	return ProbeResult{
		RawFree:     rawFree,
		RawFile:     rawFile,
		Sample:      sample,
		MinScore:    minScore,
		Fired:       fired,
		Reclaimable: counters.Reclaimable(),
	}, nil
}

// CandidateView is a read-only copy of one registry entry.
type CandidateView struct {
	PID         int
	Comm        string
	Score       int
	KernelOwned bool
	Flags       candidates.Flags
}

// Candidates returns a consistent dump of the registry, best victim
// first.
func (s *Shrinker) Candidates() []CandidateView {
	s.snap.Begin()
	defer s.snap.End()

	out := make([]CandidateView, 0, 256)
	s.registry.IterateByDecreasingScore(func(rec *candidates.Record) bool {
		out = append(out, CandidateView{
			PID:         rec.PID,
			Comm:        rec.Comm,
			Score:       rec.Score,
			KernelOwned: rec.KernelOwned,
			Flags:       rec.Flags(),
		})
		return true
	})
	return out
}

// Stats summarizes the engine for the control plane.
type Stats struct {
	Kills         uint64
	LastSeq       uint64
	CooldownUntil time.Time
	Candidates    int
}

func (s *Shrinker) Stats() Stats {
	return Stats{
		Kills:         s.kills.Load(),
		LastSeq:       s.seq.Current(),
		CooldownUntil: time.Unix(0, s.deadline.Load()),
		Candidates:    s.registry.Len(),
	}
}

// CooldownUntil reports the nanosecond deadline of the last kill.
func (s *Shrinker) CooldownUntil() int64 {
	return s.deadline.Load()
}

// Kills reports the running kill tally.
func (s *Shrinker) Kills() uint64 {
	return s.kills.Load()
}

//
// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────
//

// AdvanceEpoch performs safe reclamation.
// Intended to be called periodically by a background job.
func (s *Shrinker) AdvanceEpoch() {
	reclaim.AdvanceAndReclaim(s.clock, s.ring, s.pool, s.scanEpoch, s.snap.Epoch())
}

// RestoreCooldown carries a still-live kill cooldown across a restart.
func (s *Shrinker) RestoreCooldown(until time.Time) {
	s.deadline.Store(until.UnixNano())
}

// RestoreKills seeds the kill tally from replayed state.
func (s *Shrinker) RestoreKills(n uint64) {
	s.kills.Store(n)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
