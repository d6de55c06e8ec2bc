package candidates

import "testing"

func TestRBTreeInsertFindDelete(t *testing.T) {
	tree := NewRBTree()
	b1 := tree.UpsertBucket(100)
	if b1 == nil {
		t.Fatal("UpsertBucket failed")
	}
	if b2 := tree.FindBucket(100); b2 != b1 {
		t.Error("FindBucket did not return same ScoreBucket")
	}

	tree.UpsertBucket(200)
	if tree.MinBucket().Score != 100 {
		t.Error("expected min=100")
	}
	if tree.MaxBucket().Score != 200 {
		t.Error("expected max=200")
	}

	if !tree.DeleteBucket(100) {
		t.Error("DeleteBucket failed")
	}
	if tree.FindBucket(100) != nil {
		t.Error("expected bucket 100 to be gone")
	}
}

func TestRBTreeDescendingOrder(t *testing.T) {
	tree := NewRBTree()
	for _, s := range []int{300, 0, 900, 100, 600} {
		tree.UpsertBucket(s)
	}

	var got []int
	tree.ForEachDescending(func(b *ScoreBucket) bool {
		got = append(got, b.Score)
		return true
	})

	want := []int{900, 600, 300, 100, 0}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRBTreePredecessor(t *testing.T) {
	tree := NewRBTree()
	tree.UpsertBucket(100)
	tree.UpsertBucket(500)
	tree.UpsertBucket(900)

	// Predecessor works by value even for scores not in the tree.
	if b := tree.Predecessor(500); b == nil || b.Score != 100 {
		t.Errorf("Predecessor(500): expected 100, got %v", b)
	}
	if b := tree.Predecessor(700); b == nil || b.Score != 500 {
		t.Errorf("Predecessor(700): expected 500, got %v", b)
	}
	if b := tree.Predecessor(100); b != nil {
		t.Errorf("Predecessor(100): expected nil, got %d", b.Score)
	}
}

// --- Edge Cases ---

func TestDeleteNonExistentBucket(t *testing.T) {
	tree := NewRBTree()
	if tree.DeleteBucket(123) {
		t.Error("expected false when deleting non-existent bucket")
	}
}

func TestEmptyTreeMinMax(t *testing.T) {
	tree := NewRBTree()
	if tree.MinBucket() != nil || tree.MaxBucket() != nil {
		t.Error("expected nil for min/max on empty tree")
	}
}

func TestUpsertDuplicateBucket(t *testing.T) {
	tree := NewRBTree()
	b1 := tree.UpsertBucket(150)
	b2 := tree.UpsertBucket(150)
	if b1 != b2 {
		t.Error("Upsert should return the same bucket for duplicate score")
	}
}

func TestRBTreeDeleteManyKeepsOrder(t *testing.T) {
	tree := NewRBTree()
	for s := 0; s < 64; s++ {
		tree.UpsertBucket(s)
	}
	for s := 0; s < 64; s += 2 {
		if !tree.DeleteBucket(s) {
			t.Fatalf("delete %d failed", s)
		}
	}

	prev := ScoreAdjMax + 1
	n := 0
	tree.ForEachDescending(func(b *ScoreBucket) bool {
		if b.Score >= prev {
			t.Fatalf("order violated: %d after %d", b.Score, prev)
		}
		if b.Score%2 == 0 {
			t.Fatalf("deleted score %d still present", b.Score)
		}
		prev = b.Score
		n++
		return true
	})
	if n != 32 {
		t.Fatalf("expected 32 buckets, got %d", n)
	}
}
