package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lowmemd/snapshot"
)

func (s *Shrinker) StartSnapshotJob(
	ctx context.Context,
	dir string,
	interval time.Duration,
) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}

			seq := s.seq.Current()

			// Write snapshot under a read epoch
			s.snap.Begin()
			err := w.Write(seq, s.deadline.Load(), s.kills.Load(), s.registry)
			s.snap.End()
			if err != nil {
				s.log.Warn("snapshot write failed", zap.Error(err))
				continue
			}

			// Truncate the journal after snapshot
			_ = s.journal.TruncateBefore(seq)

			// GC the outbox (acked only)
			_ = s.outbox.TruncateAckedUpTo(seq)
		}
	}()
}
