package config

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"lowmemd/domain/pressure"
)

// Params are the runtime-tunable scan parameters. Scans never read them
// piecemeal: a Store hands out one immutable snapshot per invocation.
type Params struct {
	Table      pressure.Table
	Cost       int
	DebugLevel int
	FastRun    bool
}

// Config is everything the daemon is wired with at startup.
type Config struct {
	ProcMount string

	JournalDir  string
	OutboxDir   string
	SnapshotDir string

	GRPCAddr string

	KafkaEnabled   bool
	KafkaBrokers   []string
	EventTopic     string
	TelemetryTopic string

	ScanInterval     time.Duration
	SyncInterval     time.Duration
	EpochInterval    time.Duration
	SnapshotInterval time.Duration

	Params Params
}

// Load reads the config file (optional) and environment, filling defaults
// that mirror the stock driver parameters.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("proc_mount", "/proc")
	v.SetDefault("journal_dir", "/var/lib/lowmemd/journal")
	v.SetDefault("outbox_dir", "/var/lib/lowmemd/outbox")
	v.SetDefault("snapshot_dir", "/var/lib/lowmemd/snapshot")
	v.SetDefault("grpc_addr", ":50072")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.event_topic", "lowmemd.kills")
	v.SetDefault("kafka.telemetry_topic", "lowmemd.pressure")
	v.SetDefault("scan_interval", "1s")
	v.SetDefault("sync_interval", "2s")
	v.SetDefault("epoch_interval", "2s")
	v.SetDefault("snapshot_interval", "60s")

	def := pressure.DefaultTable()
	v.SetDefault("scores", def.Scores)
	v.SetDefault("minfree", def.MinFree)
	v.SetDefault("cost", 16)
	v.SetDefault("debug_level", 1)
	v.SetDefault("fast_run", true)

	v.SetEnvPrefix("LOWMEMD")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	minfree := make([]int64, 0)
	for _, m := range v.GetIntSlice("minfree") {
		minfree = append(minfree, int64(m))
	}

	cfg := &Config{
		ProcMount:        v.GetString("proc_mount"),
		JournalDir:       v.GetString("journal_dir"),
		OutboxDir:        v.GetString("outbox_dir"),
		SnapshotDir:      v.GetString("snapshot_dir"),
		GRPCAddr:         v.GetString("grpc_addr"),
		KafkaEnabled:     v.GetBool("kafka.enabled"),
		KafkaBrokers:     v.GetStringSlice("kafka.brokers"),
		EventTopic:       v.GetString("kafka.event_topic"),
		TelemetryTopic:   v.GetString("kafka.telemetry_topic"),
		ScanInterval:     v.GetDuration("scan_interval"),
		SyncInterval:     v.GetDuration("sync_interval"),
		EpochInterval:    v.GetDuration("epoch_interval"),
		SnapshotInterval: v.GetDuration("snapshot_interval"),
		Params: Params{
			Table: pressure.Table{
				Scores:  v.GetIntSlice("scores"),
				MinFree: minfree,
			},
			Cost:       v.GetInt("cost"),
			DebugLevel: v.GetInt("debug_level"),
			FastRun:    v.GetBool("fast_run"),
		},
	}
	return cfg, nil
}

// Store hands out atomic snapshots of the runtime parameters and accepts
// replacements from the control plane. Readers never see a half-applied
// update.
type Store struct {
	p atomic.Pointer[Params]
}

func NewStore(p Params) *Store {
	s := &Store{}
	s.p.Store(&p)
	return s
}

func (s *Store) Snapshot() Params {
	return *s.p.Load()
}

func (s *Store) Update(p Params) {
	s.p.Store(&p)
}

// ZapLevel maps the driver-style debug_level (0..5) onto zap levels.
func ZapLevel(debugLevel int) zapcore.Level {
	switch {
	case debugLevel >= 4:
		return zapcore.DebugLevel
	case debugLevel >= 2:
		return zapcore.InfoLevel
	case debugLevel >= 1:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
