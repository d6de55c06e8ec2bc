package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"lowmemd/config"
	"lowmemd/domain/candidates"
	"lowmemd/infra/proctable"
	"lowmemd/infra/reclaim"
)

func newSync(tbl *fakeTable) (*RegistrySync, *candidates.Registry) {
	reg := candidates.NewRegistry()
	return NewRegistrySync(
		zap.NewNop(),
		reg,
		tbl,
		&reclaim.Clock{},
		reclaim.NewRing(1024),
		reclaim.NewRecordPool(),
	), reg
}

func TestSweepInsertsAndRemoves(t *testing.T) {
	tbl := &fakeTable{infos: []proctable.Info{
		{PID: 100, Comm: "app", Score: 500, ResidentPages: 100},
		{PID: 2, Comm: "kworker", Score: 0, KernelThread: true},
	}}
	s, reg := newSync(tbl)

	if err := s.Sweep(); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("registry len = %d, want 2", reg.Len())
	}
	if !reg.Lookup(2).KernelOwned {
		t.Fatal("kernel thread must be registered as kernel-owned")
	}

	tbl.mu.Lock()
	tbl.infos = tbl.infos[1:]
	tbl.mu.Unlock()

	if err := s.Sweep(); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if reg.Lookup(100) != nil {
		t.Fatal("exited process still registered")
	}
}

func TestSweepRekeysOnScoreChange(t *testing.T) {
	tbl := &fakeTable{infos: []proctable.Info{
		{PID: 100, Comm: "app", Score: 500},
	}}
	s, reg := newSync(tbl)

	if err := s.Sweep(); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	first := reg.Lookup(100)

	tbl.mu.Lock()
	tbl.infos[0].Score = 900
	tbl.mu.Unlock()

	if err := s.Sweep(); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	second := reg.Lookup(100)
	if second == first {
		t.Fatal("score change must produce a fresh record")
	}
	if second.Score != 900 {
		t.Fatalf("score = %d, want 900", second.Score)
	}
	if reg.Len() != 1 {
		t.Fatalf("registry len = %d, want 1", reg.Len())
	}
}

func TestSweepMarksZombies(t *testing.T) {
	tbl := &fakeTable{infos: []proctable.Info{
		{PID: 100, Comm: "app", Score: 500, Zombie: true, ResidentPages: 10},
		{PID: 101, Comm: "husk", Score: 500, Zombie: true, ResidentPages: 0},
	}}
	s, reg := newSync(tbl)

	if err := s.Sweep(); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	f := reg.Lookup(100).Flags()
	if !f.Exiting || f.MemReleased {
		t.Fatalf("zombie with memory: %+v", f)
	}
	f = reg.Lookup(101).Flags()
	if !f.Exiting || !f.MemReleased {
		t.Fatalf("drained zombie: %+v", f)
	}
}

func TestMonitorFiresShrinkUnderPressure(t *testing.T) {
	src := pressuredSource()
	tbl := &fakeTable{resident: map[int]int64{100: 500}}
	h := newHarness(t, src, tbl)
	addCandidate(h.registry, 100, "app", 900)

	m := NewMonitor(
		zap.NewNop(),
		h.shr,
		src,
		config.NewStore(testParams()),
		nil,
		5*time.Millisecond,
	)

	m.Register(context.Background())
	defer m.Unregister()

	deadline := time.Now().Add(2 * time.Second)
	for tbl.killCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("monitor never fired a scan")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
