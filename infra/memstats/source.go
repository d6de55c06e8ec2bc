package memstats

import (
	"fmt"
	"os"

	"github.com/prometheus/procfs"

	"lowmemd/domain/pressure"
)

// Counters is the coarse global memory picture, in pages.
type Counters struct {
	Free      int64
	FilePages int64
	Shmem     int64

	ActiveAnon   int64
	InactiveAnon int64
	ActiveFile   int64
	InactiveFile int64
}

// Reclaimable is the coarse estimate a shrink call reports back: every
// active and inactive page, anonymous and file-backed.
func (c Counters) Reclaimable() int64 {
	return c.ActiveAnon + c.InactiveAnon + c.ActiveFile + c.InactiveFile
}

// Source supplies global counters and the node's zone snapshot.
type Source interface {
	Counters() (Counters, error)
	Zones() ([]pressure.Zone, error)
}

// ProcSource reads counters from /proc via procfs.
type ProcSource struct {
	fs       procfs.FS
	pageSize int64
}

func NewProcSource(mount string) (*ProcSource, error) {
	fs, err := procfs.NewFS(mount)
	if err != nil {
		return nil, fmt.Errorf("memstats: mount %s: %w", mount, err)
	}
	return &ProcSource{
		fs:       fs,
		pageSize: int64(os.Getpagesize()),
	}, nil
}

func (s *ProcSource) Counters() (Counters, error) {
	mi, err := s.fs.Meminfo()
	if err != nil {
		return Counters{}, fmt.Errorf("memstats: meminfo: %w", err)
	}

	// /proc/meminfo reports kB.
	kb := func(p *uint64) int64 {
		if p == nil {
			return 0
		}
		return int64(*p) * 1024 / s.pageSize
	}

	return Counters{
		Free:         kb(mi.MemFree),
		FilePages:    kb(mi.Cached) + kb(mi.SwapCached) + kb(mi.Buffers),
		Shmem:        kb(mi.Shmem),
		ActiveAnon:   kb(mi.ActiveAnon),
		InactiveAnon: kb(mi.InactiveAnon),
		ActiveFile:   kb(mi.ActiveFile),
		InactiveFile: kb(mi.InactiveFile),
	}, nil
}

// Zones returns node 0's zones in /proc/zoneinfo order, indexed by their
// position within the node.
func (s *ProcSource) Zones() ([]pressure.Zone, error) {
	zis, err := s.fs.Zoneinfo()
	if err != nil {
		return nil, fmt.Errorf("memstats: zoneinfo: %w", err)
	}

	pg := func(p *int64) int64 {
		if p == nil {
			return 0
		}
		return *p
	}

	var zones []pressure.Zone
	idx := 0
	for _, zi := range zis {
		if zi.Node != "0" {
			continue
		}

		z := pressure.Zone{
			Index:     idx,
			Name:      zi.Zone,
			Movable:   zi.Zone == "Movable",
			Present:   pg(zi.Present),
			Managed:   pg(zi.Managed),
			Free:      pg(zi.NrFreePages),
			FilePages: pg(zi.NrActiveFile) + pg(zi.NrInactiveFile),
			Shmem:     pg(zi.NrShmem),
			Min:       pg(zi.Min),
			Low:       pg(zi.Low),
			High:      pg(zi.High),
		}
		z.Protection = make([]int64, 0, len(zi.Protection))
		for _, p := range zi.Protection {
			z.Protection = append(z.Protection, pg(p))
		}
		zones = append(zones, z)
		idx++
	}
	return zones, nil
}
