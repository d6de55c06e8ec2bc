package journal

import (
	"testing"
	"time"
)

func TestJournalAppendAndReplay(t *testing.T) {
	dir := t.TempDir()

	j, err := Open(Config{Dir: dir, SegmentSize: 1 << 20, SegmentDuration: time.Minute})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}

	const n = 50
	for i := 1; i <= n; i++ {
		k := Kill{
			PID: 1000 + i, Comm: "victim", Score: 900,
			Footprint: int64(i * 10), OtherFree: 500, OtherFile: 400,
		}
		if err := j.Append(NewRecord(RecordKill, uint64(i), k.Encode())); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := j.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	count := 0
	lastSeq, err := Replay(dir, func(rec *Record) error {
		if rec.Type != RecordKill {
			t.Fatalf("unexpected record type: %v", rec.Type)
		}
		k, err := DecodeKill(rec.Data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if k.Comm != "victim" || k.Score != 900 {
			t.Fatalf("payload mangled: %+v", k)
		}
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != n || lastSeq != n {
		t.Fatalf("expected %d records ending at seq %d, got %d/%d", n, n, count, lastSeq)
	}
}

func TestJournalRotationAndTruncate(t *testing.T) {
	dir := t.TempDir()

	// Tiny segments so every few records rotate.
	j, err := Open(Config{Dir: dir, SegmentSize: 64, SegmentDuration: time.Minute})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	for i := 1; i <= 10; i++ {
		k := Kill{PID: i, Comm: "x", Score: 1, Footprint: 1, OtherFree: 1, OtherFile: 1}
		if err := j.Append(NewRecord(RecordKill, uint64(i), k.Encode())); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	if err := j.TruncateBefore(5); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	_ = j.Close()

	lastSeq, err := Replay(dir, func(*Record) error { return nil })
	if err != nil {
		t.Fatalf("replay after truncate: %v", err)
	}
	if lastSeq != 10 {
		t.Fatalf("expected surviving tail up to seq 10, got %d", lastSeq)
	}
}

func TestJournalReopenAfterRotation(t *testing.T) {
	dir := t.TempDir()

	// SegmentSize 1 rotates after every record.
	j, err := Open(Config{Dir: dir, SegmentSize: 1, SegmentDuration: time.Minute})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	for i := 1; i <= 3; i++ {
		k := Kill{PID: i, Comm: "x", Score: 1, Footprint: 1, OtherFree: 1, OtherFile: 1}
		if err := j.Append(NewRecord(RecordKill, uint64(i), k.Encode())); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = j.Close()

	// A restart must land in the newest segment, not overwrite into
	// the oldest and break sequence ordering.
	j, err = Open(Config{Dir: dir, SegmentSize: 1, SegmentDuration: time.Minute})
	if err != nil {
		t.Fatalf("reopen journal: %v", err)
	}
	k := Kill{PID: 4, Comm: "x", Score: 1, Footprint: 1, OtherFree: 1, OtherFile: 1}
	if err := j.Append(NewRecord(RecordKill, 4, k.Encode())); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	_ = j.Close()

	var seqs []uint64
	lastSeq, err := Replay(dir, func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("replay after restart: %v (saw %v)", err, seqs)
	}
	if lastSeq != 4 || len(seqs) != 4 {
		t.Fatalf("expected seqs 1..4, got %v", seqs)
	}
}

func TestKillPayloadRoundTrip(t *testing.T) {
	k := Kill{PID: 4231, Comm: "chrome", Score: 300, Footprint: 98765, OtherFree: 111, OtherFile: 222}
	got, err := DecodeKill(k.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != k {
		t.Fatalf("round trip mismatch: %+v != %+v", got, k)
	}

	if _, err := DecodeKill([]byte("garbage")); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestKillPayloadCommWithDelimiter(t *testing.T) {
	k := Kill{PID: 7, Comm: "a|b (deleted)", Score: 42, Footprint: 9, OtherFree: 1, OtherFile: 2}
	got, err := DecodeKill(k.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != k {
		t.Fatalf("round trip mismatch: %+v != %+v", got, k)
	}
}
