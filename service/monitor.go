package service

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"lowmemd/config"
	"lowmemd/domain/pressure"
	"lowmemd/infra/memstats"
	"lowmemd/infra/telemetry"
)

// scanBatch is the page budget handed to a fired scan before cost
// derating.
const scanBatch = 128

// Monitor is the reclaim driver: it samples memory pressure on a fixed
// cadence and invokes the shrinker when a threshold band fires. It is
// the daemon-side stand-in for the host's reclaim pressure callbacks.
//
// Register starts it; Unregister stops it and waits for the loop to
// drain. The shrinker is inert while unregistered.
type Monitor struct {
	log    *zap.Logger
	shr    *Shrinker
	source memstats.Source
	params *config.Store
	tel    *telemetry.Producer // optional

	interval time.Duration
	pid      int

	cancel context.CancelFunc
	done   chan struct{}
}

func NewMonitor(
	log *zap.Logger,
	shr *Shrinker,
	source memstats.Source,
	params *config.Store,
	tel *telemetry.Producer,
	interval time.Duration,
) *Monitor {
	return &Monitor{
		log:      log,
		shr:      shr,
		source:   source,
		params:   params,
		tel:      tel,
		interval: interval,
		pid:      os.Getpid(),
	}
}

// Register starts the pressure loop.
func (m *Monitor) Register(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.loop(ctx)
	m.log.Info("pressure monitor registered", zap.Duration("interval", m.interval))
}

// Unregister stops the loop and blocks until it has exited.
func (m *Monitor) Unregister() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.cancel = nil
	m.log.Info("pressure monitor unregistered")
}

func (m *Monitor) loop(ctx context.Context) {
	defer close(m.done)

	t := time.NewTicker(m.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.tick(ctx)
		}
	}
}

func (m *Monitor) tick(ctx context.Context) {
	p := m.params.Snapshot()

	zones, err := m.source.Zones()
	if err != nil {
		zones = nil
	}
	alloc := pressure.AllocContext{
		HighZoneIdx: pressure.TargetZoneIndex(zones),
		Background:  true,
		Initiator:   m.pid,
	}

	pr, err := m.shr.Probe(alloc)
	if err != nil {
		m.log.Warn("pressure sample failed", zap.Error(err))
		return
	}

	if m.tel != nil {
		if err := m.tel.PublishSample(ctx, pr.RawFree, pr.RawFile, pr.Sample, pr.MinScore, pr.Fired); err != nil {
			m.log.Debug("telemetry publish failed", zap.Error(err))
		}
	}

	if !pr.Fired {
		return
	}
	m.shr.Shrink(ctx, derate(scanBatch, p.Cost), alloc)
}

// derate shrinks the scan budget in proportion to the advertised cost
// of one pass. The stock cost of 16 leaves the budget untouched;
// doubling it halves the work offered per tick.
func derate(batch int64, cost int) int64 {
	if cost <= 0 {
		cost = 16
	}
	n := batch * 16 / int64(cost)
	if n < 1 {
		n = 1
	}
	return n
}
