package renderer

import "time"

// RenderStats contains statistics about one render pass
type RenderStats struct {
	TotalPixels int           // Number of pixels rendered
	Tiles       int           // Number of work units (1 for sequential renders)
	Workers     int           // Number of goroutines that rendered
	Elapsed     time.Duration // Wall time of the pass
}

// PixelsPerSecond returns the pass throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}
