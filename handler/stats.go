package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts records written to the sink
	ProcessedTotal uint64
	// FilteredTotal counts records dropped by the level threshold
	FilteredTotal uint64
	// RotationsTotal counts file truncations
	RotationsTotal uint64
	// FailedTotal counts records that could not be written
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.FilteredTotal, 1)
}

// IncrementRotations atomically increments the rotation counter
func (s *Stats) IncrementRotations() {
	atomic.AddUint64(&s.RotationsTotal, 1)
}

// IncrementFailed atomically increments the failure counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.FilteredTotal, 0)
	atomic.StoreUint64(&s.RotationsTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed uint64
	Filtered  uint64
	Rotations uint64
	Failed    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: atomic.LoadUint64(&s.ProcessedTotal),
		Filtered:  atomic.LoadUint64(&s.FilteredTotal),
		Rotations: atomic.LoadUint64(&s.RotationsTotal),
		Failed:    atomic.LoadUint64(&s.FailedTotal),
	}
}
