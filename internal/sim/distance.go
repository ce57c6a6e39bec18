package sim

import "fmt"

// DistanceTracker accumulates the distance scrolled and the elapsed play
// time of the current run. The level manager consumes the elapsed time.
type DistanceTracker struct {
	distance float64
	elapsed  float64
}

// Update advances the tracker by one frame.
func (d *DistanceTracker) Update(scrollSpeed, dt float64) {
	d.distance += scrollSpeed * dt
	d.elapsed += dt
}

// Reset clears the accumulated distance and elapsed time.
func (d *DistanceTracker) Reset() {
	d.distance = 0
	d.elapsed = 0
}

// Distance returns the raw accumulated distance in world units.
func (d *DistanceTracker) Distance() float64 {
	return d.distance
}

// Elapsed returns the play time of the current run in seconds.
func (d *DistanceTracker) Elapsed() float64 {
	return d.elapsed
}

// DistanceInt returns the distance truncated to whole units for display.
func (d *DistanceTracker) DistanceInt() int {
	return int(d.distance)
}

// Formatted returns the distance as a display string, e.g. "1250m".
func (d *DistanceTracker) Formatted() string {
	return fmt.Sprintf("%dm", d.DistanceInt())
}
