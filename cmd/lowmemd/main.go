package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"lowmemd/api/grpcserver"
	pb "lowmemd/api/pb"
	"lowmemd/config"
	"lowmemd/domain/candidates"
	"lowmemd/infra/journal"
	"lowmemd/infra/memstats"
	"lowmemd/infra/outbox"
	"lowmemd/infra/proctable"
	"lowmemd/infra/reclaim"
	"lowmemd/infra/sequence"
	"lowmemd/infra/telemetry"
	"lowmemd/jobs/broadcaster"
	"lowmemd/service"
	"lowmemd/snapshot"
)

func main() {
	var cfgPath string

	root := &cobra.Command{
		Use:   "lowmemd",
		Short: "Userspace low-memory process killer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath)
		},
	}
	root.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(config.ZapLevel(cfg.Params.DebugLevel))
	log, err := zcfg.Build()
	if err != nil {
		return err
	}
	defer log.Sync()

	// ---------------- Kill journal ----------------

	jnl, err := journal.Open(journal.Config{
		Dir:         cfg.JournalDir,
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		return fmt.Errorf("journal init: %w", err)
	}
	defer jnl.Close()

	// ---------------- Outbox ----------------

	ob, err := outbox.Open(cfg.OutboxDir)
	if err != nil {
		return fmt.Errorf("outbox init: %w", err)
	}
	defer ob.Close()

	// ---------------- Host views ----------------

	source, err := memstats.NewProcSource(cfg.ProcMount)
	if err != nil {
		return err
	}
	procs, err := proctable.NewProcTable(cfg.ProcMount)
	if err != nil {
		return err
	}

	// ---------------- Memory ----------------

	clock := &reclaim.Clock{}
	ring := reclaim.NewRing(1 << 12)
	pool := reclaim.NewRecordPool()

	// ---------------- Core ----------------

	registry := candidates.NewRegistry()
	seqGen := sequence.New(0)
	params := config.NewStore(cfg.Params)

	shr := service.NewShrinker(
		log, params, registry, source, procs,
		jnl, ob, seqGen, clock, ring, pool,
	)

	// ---------------- Journal replay ----------------

	// Continuity across restarts comes from the last snapshot plus the
	// journal tail; the journal alone is authoritative when they
	// disagree.
	if snap, err := snapshot.Load(filepath.Join(cfg.SnapshotDir, "snapshot.bin")); err != nil {
		return fmt.Errorf("snapshot load: %w", err)
	} else if snap != nil {
		seqGen.Reset(snap.Seq)
		shr.RestoreKills(snap.Kills)
	}

	if err := service.ReplayJournal(cfg.JournalDir, seqGen, shr, log); err != nil {
		return fmt.Errorf("journal replay: %w", err)
	}

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sync := service.NewRegistrySync(log, registry, procs, clock, ring, pool)
	if err := sync.Sweep(); err != nil {
		return fmt.Errorf("initial registry sweep: %w", err)
	}
	go sync.Run(ctx, cfg.SyncInterval)

	go func() {
		t := time.NewTicker(cfg.EpochInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				shr.AdvanceEpoch()
			}
		}
	}()

	shr.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotInterval)

	var tel *telemetry.Producer
	if cfg.KafkaEnabled {
		bc, err := broadcaster.New(log, ob, cfg.KafkaBrokers, cfg.EventTopic, 250*time.Millisecond)
		if err != nil {
			return fmt.Errorf("broadcaster init: %w", err)
		}
		defer bc.Close()
		bc.Start(ctx)

		tel = telemetry.NewProducer(cfg.KafkaBrokers, cfg.TelemetryTopic)
		defer tel.Close()
	}

	// ---------------- Pressure monitor ----------------

	mon := service.NewMonitor(log, shr, source, params, tel, cfg.ScanInterval)
	mon.Register(ctx)
	defer mon.Unregister()

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterLowMemServer(grpcSrv, grpcserver.NewServer(shr, log))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		grpcSrv.GracefulStop()
		cancel()
	}()

	log.Info("lowmemd running", zap.String("addr", cfg.GRPCAddr))
	return grpcSrv.Serve(lis)
}
