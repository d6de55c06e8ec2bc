package snapshot

import (
	"path/filepath"
	"testing"
	"time"

	"lowmemd/domain/candidates"
	"lowmemd/infra/reclaim"
)

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	reg := candidates.NewRegistry()
	for i, score := range []int{900, 400, 100} {
		rec := &candidates.Record{}
		rec.Reset(100+i, "proc", score, false)
		reg.Insert(rec)
	}
	victim := reg.Lookup(100)
	victim.MarkDeath()

	w := &Writer{Dir: dir}
	until := time.Now().Add(time.Second).UnixNano()
	if err := w.Write(42, until, 7, reg); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(filepath.Join(dir, "snapshot.bin"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s == nil {
		t.Fatal("expected snapshot")
	}
	if s.Seq != 42 || s.Kills != 7 || s.CooldownUntil != until {
		t.Fatalf("unexpected header: %+v", s)
	}
	if len(s.Candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(s.Candidates))
	}
	if s.Candidates[0].Score != 900 || !s.Candidates[0].DeathMarked {
		t.Fatalf("expected death-marked 900 first, got %+v", s.Candidates[0])
	}
}

func TestLoadMissingIsNotAnError(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "snapshot.bin"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s != nil {
		t.Fatal("expected nil snapshot for missing file")
	}
}

func TestReaderEpochVisibility(t *testing.T) {
	var clock reclaim.Clock
	r := NewReader(&clock)

	r.Begin()
	if r.Epoch().Value() != clock.Now() {
		t.Fatal("reader should pin the current epoch")
	}
	r.End()
}
