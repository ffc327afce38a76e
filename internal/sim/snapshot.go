package sim

// Snapshot captures the complete world state in primitive fields, suitable
// for replay comparison and checksumming across machines.
type Snapshot struct {
	Tick    int
	Impacts int
	BoxX    int32
	BoxY    int32
	VelX    int32
	VelY    int32
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:    w.tick,
		Impacts: w.impacts,
		BoxX:    w.box.Pos.X.Raw(),
		BoxY:    w.box.Pos.Y.Raw(),
		VelX:    w.vel.X.Raw(),
		VelY:    w.vel.Y.Raw(),
	}
}

// Hash folds the snapshot into a single checksum for determinism checks.
// Two runs of the same scene must produce equal hashes at equal ticks.
func (s Snapshot) Hash() uint64 {
	h := uint64(1469598103934665603) // FNV offset basis
	for _, v := range []int64{
		int64(s.Tick), int64(s.Impacts),
		int64(s.BoxX), int64(s.BoxY),
		int64(s.VelX), int64(s.VelY),
	} {
		h ^= uint64(v)
		h *= 1099511628211 // FNV prime
	}
	return h
}
