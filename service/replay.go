package service

import (
	"time"

	"go.uber.org/zap"

	"lowmemd/infra/journal"
	"lowmemd/infra/sequence"
)

/*
ReplayJournal rebuilds restart-relevant state from the kill journal.

IMPORTANT:
- This MUST run before the monitor registers
- Only kill records matter here; parameter records are an audit trail
*/

func ReplayJournal(
	dir string,
	seqGen *sequence.Sequencer,
	shr *Shrinker,
	log *zap.Logger,
) error {
	var (
		kills      uint64
		lastKillAt int64
	)

	lastSeq, err := journal.Replay(dir, func(rec *journal.Record) error {
		if rec.Type != journal.RecordKill {
			return nil
		}
		if _, err := journal.DecodeKill(rec.Data); err != nil {
			return err
		}
		kills++
		lastKillAt = rec.Time
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay
	seqGen.Reset(lastSeq)
	shr.RestoreKills(kills)

	// A kill issued moments before the restart is still tearing down;
	// honor the remainder of its cooldown.
	if lastKillAt > 0 {
		until := time.Unix(0, lastKillAt).Add(killCooldown)
		if time.Now().Before(until) {
			shr.RestoreCooldown(until)
		}
	}

	log.Info("journal replay completed",
		zap.Uint64("last_seq", lastSeq),
		zap.Uint64("kills", kills))
	return nil
}
