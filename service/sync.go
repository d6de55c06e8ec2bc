package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lowmemd/domain/candidates"
	"lowmemd/infra/proctable"
	"lowmemd/infra/reclaim"
)

// RegistrySync keeps the candidate registry converged on the host
// process table. It is the single writer of the registry: inserts for
// new processes, retire-and-reinsert for score changes, removal for
// exits. Scans may be walking the registry while it runs; removed
// records are retired through the epoch ring, never freed in place.
type RegistrySync struct {
	log      *zap.Logger
	registry *candidates.Registry
	procs    proctable.Table

	clock *reclaim.Clock
	ring  *reclaim.Ring
	pool  *reclaim.RecordPool
}

func NewRegistrySync(
	log *zap.Logger,
	registry *candidates.Registry,
	procs proctable.Table,
	clock *reclaim.Clock,
	ring *reclaim.Ring,
	pool *reclaim.RecordPool,
) *RegistrySync {
	return &RegistrySync{
		log:      log,
		registry: registry,
		procs:    procs,
		clock:    clock,
		ring:     ring,
		pool:     pool,
	}
}

// Sweep reconciles the registry with one process-table enumeration.
func (s *RegistrySync) Sweep() error {
	infos, err := s.procs.List()
	if err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(infos))
	for _, info := range infos {
		seen[info.PID] = struct{}{}

		rec := s.registry.Lookup(info.PID)
		switch {
		case rec == nil:
			s.insert(info)
		case rec.Score != info.Score || rec.Comm != info.Comm:
			// Score is immutable on a live record; re-keying is a
			// retire plus a fresh insert so in-flight walks keep a
			// coherent node under their feet.
			s.replace(rec, info)
		default:
			s.updateFlags(rec, info)
		}
	}

	for _, pid := range s.registry.PIDs() {
		if _, ok := seen[pid]; ok {
			continue
		}
		if old := s.registry.Remove(pid); old != nil {
			reclaim.Retire(s.clock, s.ring, old)
		}
	}
	return nil
}

// Run sweeps on a fixed cadence until the context ends.
func (s *RegistrySync) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.Sweep(); err != nil {
				s.log.Warn("registry sweep failed", zap.Error(err))
			}
		}
	}
}

func (s *RegistrySync) insert(info proctable.Info) {
	rec := s.pool.Get()
	rec.Reset(info.PID, info.Comm, info.Score, info.KernelThread)
	s.updateFlags(rec, info)
	if !s.registry.Insert(rec) {
		s.pool.Put(rec)
	}
}

func (s *RegistrySync) replace(old *candidates.Record, info proctable.Info) {
	if detached := s.registry.Remove(old.PID); detached != nil {
		reclaim.Retire(s.clock, s.ring, detached)
	}
	s.insert(info)
}

func (s *RegistrySync) updateFlags(rec *candidates.Record, info proctable.Info) {
	if info.Zombie {
		rec.SetExiting(true)
		if info.ResidentPages == 0 {
			rec.SetMemReleased()
		}
	}
}
