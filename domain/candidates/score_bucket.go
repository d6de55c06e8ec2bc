package candidates

// ScoreBucket is a FIFO queue of records sharing one eligibility score.
type ScoreBucket struct {
	Score int

	head *Record
	tail *Record

	Count int
}

func (b *ScoreBucket) Enqueue(r *Record) {
	if b.head == nil {
		b.head = r
		b.tail = r
	} else {
		b.tail.next = r
		r.prev = b.tail
		b.tail = r
	}
	b.Count++
}

// Unlink removes r from the bucket. r's own next/prev links are left
// intact so that an in-flight scan standing on r can still step off it;
// the record is not reusable until the epoch reclaimer says so.
func (b *ScoreBucket) Unlink(r *Record) {
	if r.prev != nil {
		r.prev.next = r.next
	} else if b.head == r {
		b.head = r.next
	}
	if r.next != nil {
		r.next.prev = r.prev
	} else if b.tail == r {
		b.tail = r.prev
	}
	b.Count--
}

func (b *ScoreBucket) Empty() bool {
	return b.head == nil
}

// Read-only helper
func (b *ScoreBucket) Head() *Record {
	return b.head
}
