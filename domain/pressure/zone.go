package pressure

// Balance gap and reclaim burst sizing, as the host kernel computes them.
const (
	balanceGapRatio = 100
	swapClusterMax  = 32
)

// Zone is one physical memory zone of a node, in pages. Values come from
// /proc/zoneinfo in production and are synthetic in tests.
type Zone struct {
	Index   int
	Name    string
	Movable bool

	Present int64
	Managed int64
	Free    int64

	FilePages int64
	Shmem     int64

	// Watermarks.
	Min  int64
	Low  int64
	High int64

	// Protection is the lowmem_reserve array: pages of this zone that are
	// off limits to allocations classified at the indexed zone.
	Protection []int64
}

// ProtectionFor returns the reserve held against allocations classified at
// classIdx. Indexes beyond the supplied array carry no reserve.
func (z *Zone) ProtectionFor(classIdx int) int64 {
	if classIdx < 0 || classIdx >= len(z.Protection) {
		return 0
	}
	return z.Protection[classIdx]
}

// WatermarkOK reports whether the zone's free pages clear the given mark
// plus the reserve protecting classIdx allocations.
func (z *Zone) WatermarkOK(mark int64, classIdx int) bool {
	return z.Free >= mark+z.ProtectionFor(classIdx)
}

// PreferredZone picks the zone an allocation classified at highIdx would
// target: the highest non-movable zone at or below that class.
func PreferredZone(zones []Zone, highIdx int) *Zone {
	var best *Zone
	for i := range zones {
		z := &zones[i]
		if z.Movable || z.Index > highIdx {
			continue
		}
		if best == nil || z.Index > best.Index {
			best = z
		}
	}
	return best
}

// TargetZoneIndex is the highest populated non-movable zone index of the
// node, the accounting target for background reclaim.
func TargetZoneIndex(zones []Zone) int {
	idx := 0
	for i := range zones {
		z := &zones[i]
		if z.Movable || z.Present == 0 {
			continue
		}
		if z.Index > idx {
			idx = z.Index
		}
	}
	return idx
}
