package treemap

// Metrics is a snapshot of rebalancing activity. Counters accumulate from
// construction onward; Clone starts a fresh set, Move carries them to the
// new map.
type Metrics struct {
	Skews           int64
	Splits          int64
	LevelDecrements int64
}

// Stats reports the rebalancing counters accumulated so far. They feed
// benchmark reporting and have no effect on behavior.
func (m *Map[K, V]) Stats() Metrics {
	return m.stats
}
