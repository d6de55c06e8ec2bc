package pressure

// Table is the user-supplied threshold table: parallel ascending Scores and
// MinFree sequences. If the lengths differ the shorter wins. Ordering is
// the configuration layer's responsibility; the table does not validate.
type Table struct {
	Scores  []int
	MinFree []int64
}

// DefaultTable mirrors the stock driver thresholds, rescaled to the
// 0..1000 eligibility score range.
func DefaultTable() Table {
	return Table{
		Scores:  []int{0, 67, 400, 800},
		MinFree: []int64{3 * 512, 2 * 1024, 4 * 1024, 16 * 1024},
	}
}

// MinScore walks the table in ascending order and returns the first score
// whose minfree exceeds both refined metrics. A deficit must exist in both
// free and file simultaneously: plentiful cache alone masks a free-page
// shortage, and vice versa. ok is false when no row fires, meaning nothing
// should be killed this round.
func (t Table) MinScore(s Sample) (score int, ok bool) {
	n := len(t.Scores)
	if len(t.MinFree) < n {
		n = len(t.MinFree)
	}
	for i := 0; i < n; i++ {
		if s.OtherFree < t.MinFree[i] && s.OtherFile < t.MinFree[i] {
			return t.Scores[i], true
		}
	}
	return 0, false
}
