package candidates

import (
	"sync"
	"testing"
)

func rec(pid, score int) *Record {
	return &Record{PID: pid, Comm: "p", Score: score}
}

func collect(g *Registry) []int {
	var pids []int
	g.IterateByDecreasingScore(func(r *Record) bool {
		pids = append(pids, r.PID)
		return true
	})
	return pids
}

func TestRegistryInsertRemove(t *testing.T) {
	g := NewRegistry()

	if !g.Insert(rec(1, 100)) {
		t.Fatal("insert failed")
	}
	if g.Insert(rec(1, 200)) {
		t.Error("duplicate pid insert should fail")
	}
	if g.Len() != 1 {
		t.Errorf("expected len 1, got %d", g.Len())
	}

	r := g.Remove(1)
	if r == nil || r.PID != 1 {
		t.Fatal("remove did not return the record")
	}
	if g.Remove(1) != nil {
		t.Error("second remove should return nil")
	}
	if g.Len() != 0 {
		t.Errorf("expected empty registry, got %d", g.Len())
	}
}

func TestIterateByDecreasingScore(t *testing.T) {
	g := NewRegistry()
	g.Insert(rec(10, 0))
	g.Insert(rec(11, 900))
	g.Insert(rec(12, 500))
	g.Insert(rec(13, 900)) // same bucket, FIFO after 11

	got := collect(g)
	want := []int{11, 13, 12, 10}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestIterationSurvivesRemovalMidWalk(t *testing.T) {
	g := NewRegistry()
	g.Insert(rec(1, 900))
	g.Insert(rec(2, 900))
	g.Insert(rec(3, 500))

	first := g.First()
	if first.PID != 1 {
		t.Fatalf("expected pid 1 first, got %d", first.PID)
	}

	// Remove the record the walk is standing on; its frozen links must
	// still lead to the live successor.
	g.Remove(1)
	next := g.NextByDecreasingScore(first)
	if next == nil || next.PID != 2 {
		t.Fatalf("expected pid 2 after removed record, got %v", next)
	}

	// Remove the whole remaining bucket; navigation falls through to the
	// next lower score by value.
	g.Remove(2)
	next = g.NextByDecreasingScore(next)
	if next == nil || next.PID != 3 {
		t.Fatalf("expected pid 3 after emptied bucket, got %v", next)
	}
	if g.NextByDecreasingScore(next) != nil {
		t.Error("expected end of walk")
	}
}

func TestRescoreIsRemovePlusInsert(t *testing.T) {
	g := NewRegistry()
	g.Insert(rec(1, 100))

	old := g.Remove(1)
	if old == nil {
		t.Fatal("remove failed")
	}
	g.Insert(rec(1, 800))

	r := g.Lookup(1)
	if r == nil || r.Score != 800 {
		t.Fatalf("expected rescored record, got %v", r)
	}
	if got := collect(g); len(got) != 1 || got[0] != 1 {
		t.Fatalf("unexpected walk result %v", got)
	}
}

func TestConcurrentMutationDuringWalks(t *testing.T) {
	g := NewRegistry()
	for pid := 0; pid < 200; pid++ {
		g.Insert(rec(pid, (pid*7)%ScoreAdjMax))
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for pid := 200; pid < 400; pid++ {
			g.Insert(rec(pid, (pid*13)%ScoreAdjMax))
			g.Remove(pid - 200)
		}
		close(stop)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			prev := ScoreAdjMax + 1
			g.IterateByDecreasingScore(func(r *Record) bool {
				if r.Score > prev {
					t.Errorf("walk order violated: %d after %d", r.Score, prev)
					return false
				}
				prev = r.Score
				return true
			})
		}
	}()

	wg.Wait()
	if g.Len() != 200 {
		t.Fatalf("expected 200 records, got %d", g.Len())
	}
}
