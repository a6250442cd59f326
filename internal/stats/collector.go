package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Collector tracks how many bytes and chunks were fed to a digest.
type Collector struct {
	bytesHashed atomic.Int64
	chunks      atomic.Int64
	startTime   time.Time
}

// NewCollector creates a Collector with startTime set to now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// AddChunk records one chunk of n bytes.
func (c *Collector) AddChunk(n int) {
	c.chunks.Add(1)
	c.bytesHashed.Add(int64(n))
}

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	BytesHashed int64
	Chunks      int64
	Elapsed     time.Duration
}

// Snapshot returns a point-in-time read of all counters.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		BytesHashed: c.bytesHashed.Load(),
		Chunks:      c.chunks.Load(),
		Elapsed:     c.Elapsed(),
	}
}

// Elapsed returns time since collector creation.
func (c *Collector) Elapsed() time.Duration {
	return time.Since(c.startTime)
}

// Rate returns the average bytes per second over the snapshot's elapsed time.
func (s Snapshot) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.BytesHashed) / s.Elapsed.Seconds()
}

func (s Snapshot) String() string {
	return fmt.Sprintf("bytes=%d chunks=%d", s.BytesHashed, s.Chunks)
}

// FormatBytes returns a human-readable byte count.
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
