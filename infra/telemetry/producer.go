package telemetry

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"lowmemd/domain/pressure"
)

// PressurePoint is one published pressure observation.
type PressurePoint struct {
	Time       int64 `json:"time"`
	RawFree    int64 `json:"raw_free"`
	RawFile    int64 `json:"raw_file"`
	OtherFree  int64 `json:"other_free"`
	OtherFile  int64 `json:"other_file"`
	MinScore   int   `json:"min_score"`
	ScoreFired bool  `json:"score_fired"`
}

// Producer publishes refined pressure samples for offline analysis.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Producer) PublishSample(ctx context.Context, rawFree, rawFile int64, s pressure.Sample, minScore int, fired bool) error {
	point := PressurePoint{
		Time:       time.Now().UnixNano(),
		RawFree:    rawFree,
		RawFile:    rawFile,
		OtherFree:  s.OtherFree,
		OtherFile:  s.OtherFile,
		MinScore:   minScore,
		ScoreFired: fired,
	}
	value, err := json.Marshal(point)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(point.Time, 10)),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
