package config

import (
	_ "embed"
)

//go:embed defaults/fueldrift.yaml
var defaultYAML []byte

// Default returns the default Fuel Drift configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:                  800,
			Height:                 600,
			ScrollSpeed:            120,
			CollisionFlashDuration: 0.3,
		},
		Player: PlayerConfig{
			Width:                  30,
			Height:                 18,
			Gravity:                0,
			Thrust:                 -400,
			DownThrustMultiplier:   0.5,
			HorizontalAcceleration: 800,
			MaxHorizontalSpeed:     200,
		},
		Fuel: FuelConfig{
			Max:            100,
			BurnRate:       20,
			RefillFraction: 0.275,
		},
		Cave: CaveConfig{
			SegmentWidth:    50,
			MaxHeightChange: 20,
			MaxSegments:     100,
			MinGap:          150,
			BaseGap:         400,
			GapStep:         50,
			Midline:         250,
		},
		Pickups: PickupConfig{
			Size:                 20,
			WallOffset:           5,
			SpawnVariation:       0.3,
			InitialSpawnDelay:    800,
			CleanupDistance:      1000,
			SeedOffset:           42,
			AttractionSpeed:      150,
			DefaultSpawnDistance: 300,
		},
		Beam: BeamConfig{
			MaxDuration:   2,
			HalfWidth:     40,
			HoldHalfWidth: 60,
			MaxRange:      200,
		},
		Levels: []LevelConfig{
			{Number: 1, Duration: 60, FuelSpawnDistance: 300},
			{Number: 2, Duration: 90, FuelSpawnDistance: 400},
			{Number: 3, Duration: 120, FuelSpawnDistance: 500},
			{Number: 4, Duration: 120, FuelSpawnDistance: 600},
			{Number: 5, Duration: 150, FuelSpawnDistance: 700},
			{Number: 6, Duration: 180, FuelSpawnDistance: 800},
		},
	}
}
