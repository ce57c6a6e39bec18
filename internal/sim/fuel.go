package sim

// Fuel is the craft's fuel tank with consumption and refilling.
type Fuel struct {
	Current  float64
	Max      float64
	BurnRate float64 // Fuel per second while consuming
}

// NewFuel creates a full fuel tank with the given capacity and burn rate.
func NewFuel(max, burnRate float64) Fuel {
	return Fuel{
		Current:  max,
		Max:      max,
		BurnRate: burnRate,
	}
}

// Burn consumes fuel over dt seconds when consuming is true.
// Returns true exactly on the frame the tank crosses from non-empty to
// empty; calling again on an already empty tank returns false. The signal
// is edge-triggered so the caller can fire the out-of-fuel death once.
func (f *Fuel) Burn(dt float64, consuming bool) bool {
	if !consuming {
		return false
	}

	wasEmpty := f.Current <= 0
	f.Current -= f.BurnRate * dt
	if f.Current < 0 {
		f.Current = 0
	}

	return !wasEmpty && f.Current <= 0
}

// Refill adds fuel, capped at the tank's maximum.
func (f *Fuel) Refill(amount float64) {
	f.Current += amount
	if f.Current > f.Max {
		f.Current = f.Max
	}
}

// IsEmpty returns true if the tank is empty.
func (f *Fuel) IsEmpty() bool {
	return f.Current <= 0
}

// Ratio returns current/max for gauge display, or 0 for a zero-capacity
// tank.
func (f *Fuel) Ratio() float64 {
	if f.Max <= 0 {
		return 0
	}
	return f.Current / f.Max
}
