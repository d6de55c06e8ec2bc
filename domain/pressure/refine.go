package pressure

// Sample is a refined memory-pressure snapshot, valid for one scan.
type Sample struct {
	OtherFree int64
	OtherFile int64
}

// AllocContext describes the reclaim invocation being served: the highest
// zone its allocation class may use, whether it is the background reclaim
// path, and the PID the reclaim runs on behalf of.
type AllocContext struct {
	HighZoneIdx int
	Background  bool
	Initiator   int
}

// Refine turns raw global free and reclaimable-file page counts into the
// amounts actually usable by the invoking allocation class, by deducting
// memory parked in zones the class cannot touch and reserves below it.
//
// Pure arithmetic: never blocks, never fails. Malformed zone data yields
// whatever falls out.
func Refine(free, file int64, zones []Zone, alloc AllocContext, fastRun bool) Sample {
	pz := PreferredZone(zones, alloc.HighZoneIdx)
	if pz == nil {
		return Sample{OtherFree: free, OtherFile: file}
	}
	classIdx := pz.Index

	balanceGap := pz.Low
	if g := (pz.Present + balanceGapRatio - 1) / balanceGapRatio; g < balanceGap {
		balanceGap = g
	}

	if alloc.Background && pz.WatermarkOK(pz.High+swapClusterMax+balanceGap, 0) {
		// Background reclaim on a balanced node frees more eagerly, to
		// stay ahead of allocation stalls. fastRun additionally tunes the
		// file count on the zone walk.
		free, file = tuneZones(free, file, zones, classIdx, fastRun)

		target := TargetZoneIndex(zones)
		if pz.WatermarkOK(0, target) {
			free -= pz.ProtectionFor(target)
		} else {
			free -= pz.Free
		}
	} else {
		free, file = tuneZones(free, file, zones, classIdx, true)
	}

	return Sample{OtherFree: free, OtherFile: file}
}

// tuneZones deducts, per zone: above the classification zone, everything
// (that memory cannot serve this class); below it, the reserve if the zone
// is healthy, else the zone's whole free count.
func tuneZones(free, file int64, zones []Zone, classIdx int, tuneFile bool) (int64, int64) {
	for i := range zones {
		z := &zones[i]
		if z.Movable {
			continue
		}

		if z.Index > classIdx {
			free -= z.Free
			if tuneFile {
				file -= z.FilePages - z.Shmem
			}
		} else if z.Index < classIdx {
			if z.WatermarkOK(0, classIdx) {
				free -= z.ProtectionFor(classIdx)
			} else {
				free -= z.Free
			}
		}
	}
	return free, file
}
