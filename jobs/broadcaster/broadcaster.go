package broadcaster

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"

	pb "lowmemd/api/pb"
	"lowmemd/infra/journal"
	"lowmemd/infra/outbox"
)

// maxRetries before a kill event is parked as FAILED instead of being
// offered to the broker again.
const maxRetries = 10

type Broadcaster struct {
	log      *zap.Logger
	ob       *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	log *zap.Logger,
	ob *outbox.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		log:      log,
		ob:       ob,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// ------------------------------------------------
// DRAIN LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	b.log.Info("broadcaster started", zap.String("topic", b.topic))

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

// drainOnce walks every undelivered kill event, oldest first. SENT
// entries are retried too: a crash between publish and ack leaves them
// behind, and republishing is harmless since consumers key on seq.
func (b *Broadcaster) drainOnce() {
	_ = b.ob.ScanByState(outbox.StateNew, b.publish)
	_ = b.ob.ScanByState(outbox.StateSent, b.publish)
}

func (b *Broadcaster) publish(rec outbox.Record) error {
	k, err := journal.DecodeKill(rec.Payload)
	if err != nil {
		// Poison entry; park it so the scan does not spin on it.
		b.log.Error("undecodable outbox payload", zap.Uint64("seq", rec.Seq), zap.Error(err))
		return b.ob.UpdateState(rec.Seq, outbox.StateFailed, rec.Retries, rec.Payload)
	}

	ev := &pb.KillEvent{
		Seq:         rec.Seq,
		Pid:         int32(k.PID),
		Comm:        k.Comm,
		Score:       int32(k.Score),
		Footprint:   k.Footprint,
		OtherFree:   k.OtherFree,
		OtherFile:   k.OtherFile,
		PublishedNs: time.Now().UnixNano(),
	}
	value, err := proto.Marshal(protoadapt.MessageV2Of(ev))
	if err != nil {
		return b.ob.UpdateState(rec.Seq, outbox.StateFailed, rec.Retries, rec.Payload)
	}

	// Mark SENT before the broker sees it (idempotent).
	_ = b.ob.UpdateState(rec.Seq, outbox.StateSent, rec.Retries+1, rec.Payload)

	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Key:   sarama.StringEncoder(k.Comm),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := b.producer.SendMessage(msg); err != nil {
		if rec.Retries+1 >= maxRetries {
			b.log.Error("kill event dropped after retries",
				zap.Uint64("seq", rec.Seq), zap.Error(err))
			return b.ob.UpdateState(rec.Seq, outbox.StateFailed, rec.Retries+1, rec.Payload)
		}
		// Leave it SENT; the next drain retries.
		return nil
	}

	return b.ob.UpdateState(rec.Seq, outbox.StateAcked, rec.Retries+1, rec.Payload)
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
