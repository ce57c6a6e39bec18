// Package config provides YAML-based gameplay configuration loading for
// Fuel Drift. All tunables live here and are passed explicitly into the
// simulation constructors; there is no hidden global state.
package config

// Config contains all gameplay configuration for Fuel Drift.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Fuel    FuelConfig    `yaml:"fuel"`
	Cave    CaveConfig    `yaml:"cave"`
	Pickups PickupConfig  `yaml:"pickups"`
	Beam    BeamConfig    `yaml:"beam"`
	Levels  []LevelConfig `yaml:"levels"`
}

// WorldConfig defines the visible world and scroll behavior.
type WorldConfig struct {
	Width                  float64 `yaml:"width"`                    // Visible world width in units
	Height                 float64 `yaml:"height"`                   // Visible world height in units
	ScrollSpeed            float64 `yaml:"scroll_speed"`             // Camera scroll in units/second
	CollisionFlashDuration float64 `yaml:"collision_flash_duration"` // Death flash in seconds
}

// PlayerConfig defines the craft's physics parameters.
type PlayerConfig struct {
	Width                  float64 `yaml:"width"`
	Height                 float64 `yaml:"height"`
	Gravity                float64 `yaml:"gravity"`                 // Units/sec^2, 0 disables
	Thrust                 float64 `yaml:"thrust"`                  // Units/sec^2, negative is up
	DownThrustMultiplier   float64 `yaml:"down_thrust_multiplier"`  // Fraction of thrust for downward impulse
	HorizontalAcceleration float64 `yaml:"horizontal_acceleration"` // Units/sec^2
	MaxHorizontalSpeed     float64 `yaml:"max_horizontal_speed"`    // Units/sec
}

// FuelConfig defines the fuel tank and refill behavior.
type FuelConfig struct {
	Max            float64 `yaml:"max"`
	BurnRate       float64 `yaml:"burn_rate"`       // Fuel per second while consuming
	RefillFraction float64 `yaml:"refill_fraction"` // Fraction of max restored per pickup
}

// CaveConfig defines procedural cave generation parameters.
// The per-level gap is derived as BaseGap - GapStep*(level-1), clamped
// to MinGap, and the tunnel is recentered around Midline.
type CaveConfig struct {
	SegmentWidth    float64 `yaml:"segment_width"`
	MaxHeightChange float64 `yaml:"max_height_change"` // Per-segment perturbation bound
	MaxSegments     int     `yaml:"max_segments"`      // Retention cap, oldest evicted first
	MinGap          float64 `yaml:"min_gap"`
	BaseGap         float64 `yaml:"base_gap"` // Level 1 gap
	GapStep         float64 `yaml:"gap_step"` // Gap reduction per level
	Midline         float64 `yaml:"midline"`  // Vertical center of the tunnel
}

// PickupConfig defines pickup spawning and attraction parameters.
type PickupConfig struct {
	Size                 float64 `yaml:"size"`
	WallOffset           float64 `yaml:"wall_offset"`            // Clearance from the wall surface
	SpawnVariation       float64 `yaml:"spawn_variation"`        // Fraction of average distance (0.3 = ±30%)
	InitialSpawnDelay    float64 `yaml:"initial_spawn_delay"`    // Distance before the first pickup
	CleanupDistance      float64 `yaml:"cleanup_distance"`       // How far behind the camera collected pickups linger
	SeedOffset           uint32  `yaml:"seed_offset"`            // Decorrelates pickup RNG from cave RNG
	AttractionSpeed      float64 `yaml:"attraction_speed"`       // Units/sec toward the player
	DefaultSpawnDistance float64 `yaml:"default_spawn_distance"` // Fallback when no level is active
}

// BeamConfig defines tractor beam timing and geometry.
// HoldHalfWidth must be wider than HalfWidth: the narrow band starts an
// attraction, the wide band keeps it alive (hysteresis).
type BeamConfig struct {
	MaxDuration   float64 `yaml:"max_duration"` // Seconds until auto-deactivation
	HalfWidth     float64 `yaml:"half_width"`
	HoldHalfWidth float64 `yaml:"hold_half_width"`
	MaxRange      float64 `yaml:"max_range"` // Vertical reach in units
}

// LevelConfig defines a single level's progression parameters.
type LevelConfig struct {
	Number            int     `yaml:"number"`
	Duration          float64 `yaml:"duration"` // Seconds until the next level
	FuelSpawnDistance float64 `yaml:"fuel_spawn_distance"`
}
