package pressure

import "testing"

func TestMinScoreFirstMatchingRow(t *testing.T) {
	table := Table{
		Scores:  []int{0, 8},
		MinFree: []int64{768, 4096},
	}

	// Row 0 fails (3000 >= 768), row 1 fires on both metrics.
	score, ok := table.MinScore(Sample{OtherFree: 3000, OtherFile: 3000})
	if !ok {
		t.Fatal("expected a row to fire")
	}
	if score != 8 {
		t.Errorf("expected min score 8, got %d", score)
	}
}

func TestMinScoreRequiresBothDeficits(t *testing.T) {
	table := Table{
		Scores:  []int{0},
		MinFree: []int64{1000},
	}

	cases := []struct {
		name string
		s    Sample
		ok   bool
	}{
		{"both below", Sample{OtherFree: 500, OtherFile: 500}, true},
		{"free masked by file", Sample{OtherFree: 500, OtherFile: 5000}, false},
		{"file masked by free", Sample{OtherFree: 5000, OtherFile: 500}, false},
		{"neither below", Sample{OtherFree: 5000, OtherFile: 5000}, false},
	}
	for _, c := range cases {
		if _, ok := table.MinScore(c.s); ok != c.ok {
			t.Errorf("%s: expected ok=%v", c.name, c.ok)
		}
	}
}

func TestMinScoreNoRowFires(t *testing.T) {
	table := DefaultTable()
	if _, ok := table.MinScore(Sample{OtherFree: 1 << 20, OtherFile: 1 << 20}); ok {
		t.Error("expected no kill when memory is plentiful")
	}
}

func TestMinScoreShorterLengthWins(t *testing.T) {
	table := Table{
		Scores:  []int{0, 300, 900},
		MinFree: []int64{100}, // only row 0 is usable
	}
	if _, ok := table.MinScore(Sample{OtherFree: 150, OtherFile: 150}); ok {
		t.Error("rows beyond the shorter array must not fire")
	}
	if score, ok := table.MinScore(Sample{OtherFree: 50, OtherFile: 50}); !ok || score != 0 {
		t.Errorf("expected row 0 to fire, got score=%d ok=%v", score, ok)
	}
}

// Less pressure never yields a more restrictive (lower) min score.
func TestMinScoreMonotonic(t *testing.T) {
	table := DefaultTable()

	samples := []Sample{
		{OtherFree: 100, OtherFile: 100},
		{OtherFree: 1700, OtherFile: 1700},
		{OtherFree: 3000, OtherFile: 3000},
		{OtherFree: 10000, OtherFile: 10000},
		{OtherFree: 100000, OtherFile: 100000},
	}

	prev := -1
	for i := len(samples) - 1; i >= 0; i-- { // decreasing free memory
		score, ok := table.MinScore(samples[i])
		if !ok {
			continue
		}
		if prev >= 0 && score > prev {
			t.Fatalf("min score rose from %d to %d as pressure grew", prev, score)
		}
		prev = score
	}
}
