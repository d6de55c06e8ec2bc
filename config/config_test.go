package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "/proc", cfg.ProcMount)
	require.Equal(t, []int{0, 67, 400, 800}, cfg.Params.Table.Scores)
	require.Equal(t, []int64{1536, 2048, 4096, 16384}, cfg.Params.Table.MinFree)
	require.Equal(t, 16, cfg.Params.Cost)
	require.True(t, cfg.Params.FastRun)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lowmemd.yaml")
	body := []byte(`
scores: [0, 8]
minfree: [768, 4096]
fast_run: false
debug_level: 3
grpc_addr: ":6000"
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []int{0, 8}, cfg.Params.Table.Scores)
	require.Equal(t, []int64{768, 4096}, cfg.Params.Table.MinFree)
	require.False(t, cfg.Params.FastRun)
	require.Equal(t, 3, cfg.Params.DebugLevel)
	require.Equal(t, ":6000", cfg.GRPCAddr)
}

func TestStoreSnapshotIsImmutable(t *testing.T) {
	s := NewStore(Params{Cost: 16, DebugLevel: 1})

	snap := s.Snapshot()
	s.Update(Params{Cost: 32, DebugLevel: 5})

	require.Equal(t, 16, snap.Cost)
	require.Equal(t, 32, s.Snapshot().Cost)
}

func TestZapLevelMapping(t *testing.T) {
	require.Equal(t, zapcore.ErrorLevel, ZapLevel(0))
	require.Equal(t, zapcore.WarnLevel, ZapLevel(1))
	require.Equal(t, zapcore.InfoLevel, ZapLevel(2))
	require.Equal(t, zapcore.DebugLevel, ZapLevel(4))
	require.Equal(t, zapcore.DebugLevel, ZapLevel(5))
}
