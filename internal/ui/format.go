package ui

import (
	"fmt"
	"time"

	"github.com/bamsammich/digest/internal/stats"
)

// FormatRate formats a bytes-per-second rate as a human-readable string.
func FormatRate(bytesPerSec float64) string {
	if bytesPerSec <= 0 {
		return "0 B/s"
	}
	units := []string{"B/s", "KB/s", "MB/s", "GB/s", "TB/s"}
	val := bytesPerSec
	for _, u := range units {
		if val < 1024 {
			if val < 10 {
				return fmt.Sprintf("%.2f %s", val, u)
			}
			if val < 100 {
				return fmt.Sprintf("%.1f %s", val, u)
			}
			return fmt.Sprintf("%.0f %s", val, u)
		}
		val /= 1024
	}
	return fmt.Sprintf("%.1f PB/s", val)
}

// FormatBytes wraps stats.FormatBytes for UI use.
func FormatBytes(b int64) string {
	return stats.FormatBytes(b)
}

// SnapshotAttrs renders a stats snapshot as slog attributes for the
// end-of-run debug line.
func SnapshotAttrs(s stats.Snapshot) []any {
	return []any{
		"bytes", FormatBytes(s.BytesHashed),
		"chunks", s.Chunks,
		"elapsed", s.Elapsed.Round(time.Microsecond).String(),
		"rate", FormatRate(s.Rate()),
	}
}
