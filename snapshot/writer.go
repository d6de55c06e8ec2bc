package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"lowmemd/domain/candidates"
)

type Writer struct {
	Dir string
}

func (w *Writer) Write(seq uint64, cooldownUntil int64, kills uint64, reg *candidates.Registry) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.Dir, "snapshot.bin")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := Snapshot{
		Seq:           seq,
		Created:       time.Now(),
		CooldownUntil: cooldownUntil,
		Kills:         kills,
		Candidates:    make([]Entry, 0, 256),
	}

	reg.IterateByDecreasingScore(func(rec *candidates.Record) bool {
		s.Candidates = append(s.Candidates, Entry{
			PID:         rec.PID,
			Comm:        rec.Comm,
			Score:       rec.Score,
			DeathMarked: rec.DeathMarked(),
		})
		return true
	})

	return gob.NewEncoder(f).Encode(&s)
}
