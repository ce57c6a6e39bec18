package sim

import "testing"

func TestDistanceTrackerAccumulates(t *testing.T) {
	var d DistanceTracker

	for i := 0; i < 60; i++ {
		d.Update(120, dt60)
	}

	if !floatEq(d.Distance(), 120) {
		t.Errorf("Distance after 1s at 120 u/s = %f, expected 120", d.Distance())
	}
	if !floatEq(d.Elapsed(), 1) {
		t.Errorf("Elapsed = %f, expected 1", d.Elapsed())
	}
}

func TestDistanceTrackerReset(t *testing.T) {
	var d DistanceTracker
	d.Update(120, 2.5)

	d.Reset()

	if d.Distance() != 0 || d.Elapsed() != 0 {
		t.Errorf("after Reset: distance=%f elapsed=%f, expected zeros", d.Distance(), d.Elapsed())
	}
}

func TestDistanceFormatted(t *testing.T) {
	tests := []struct {
		distance float64
		want     string
	}{
		{0, "0m"},
		{1250.7, "1250m"}, // truncated, not rounded
		{99.99, "99m"},
	}

	for _, tc := range tests {
		var d DistanceTracker
		d.Update(tc.distance, 1)
		if got := d.Formatted(); got != tc.want {
			t.Errorf("Formatted at %f = %q, expected %q", tc.distance, got, tc.want)
		}
	}
}
