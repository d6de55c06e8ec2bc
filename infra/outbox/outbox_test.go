package outbox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestOutboxLifecycle(t *testing.T) {
	o := openTestOutbox(t)

	require.NoError(t, o.PutNew(1, []byte("event-1")))

	rec, err := o.Get(1)
	require.NoError(t, err)
	require.Equal(t, StateNew, rec.State)
	require.Equal(t, []byte("event-1"), rec.Payload)

	require.NoError(t, o.UpdateState(1, StateSent, 1, rec.Payload))
	rec, err = o.Get(1)
	require.NoError(t, err)
	require.Equal(t, StateSent, rec.State)
	require.EqualValues(t, 1, rec.Retries)
	require.NotZero(t, rec.LastAttempt)

	require.NoError(t, o.UpdateState(1, StateAcked, 1, rec.Payload))
	require.NoError(t, o.Delete(1))
	_, err = o.Get(1)
	require.Error(t, err)
}

func TestScanByStateOrder(t *testing.T) {
	o := openTestOutbox(t)

	require.NoError(t, o.PutNew(3, []byte("c")))
	require.NoError(t, o.PutNew(1, []byte("a")))
	require.NoError(t, o.PutNew(2, []byte("b")))
	require.NoError(t, o.UpdateState(2, StateAcked, 0, []byte("b")))

	var seqs []uint64
	require.NoError(t, o.ScanByState(StateNew, func(rec Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	}))
	require.Equal(t, []uint64{1, 3}, seqs)
}

func TestTruncateAckedUpTo(t *testing.T) {
	o := openTestOutbox(t)

	for seq := uint64(1); seq <= 4; seq++ {
		require.NoError(t, o.PutNew(seq, []byte("e")))
		require.NoError(t, o.UpdateState(seq, StateAcked, 0, []byte("e")))
	}
	require.NoError(t, o.PutNew(5, []byte("pending")))

	require.NoError(t, o.TruncateAckedUpTo(3))

	var acked []uint64
	require.NoError(t, o.ScanByState(StateAcked, func(rec Record) error {
		acked = append(acked, rec.Seq)
		return nil
	}))
	require.Equal(t, []uint64{4}, acked)

	rec, err := o.Get(5)
	require.NoError(t, err)
	require.Equal(t, StateNew, rec.State)
}
