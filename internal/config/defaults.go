package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the default Dino Runner configuration.
// It mirrors defaults/dino.yaml and is used if the embedded file is unusable.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: DinoPhysics{
			Gravity:     0.028,
			JumpImpulse: -0.62,
			ScrollSpeed: 0.5,
		},
		Player: DinoPlayer{
			X:              6,
			GroundOffset:   4,
			AnimationSpeed: 0.1,
		},
		Obstacles: DinoObstacles{
			SpawnIntervalMS: 1000,
			SpawnJitter:     20,
			BirdAltitude:    2,
			BirdFlapSpeed:   0.05,
		},
		Ground: DinoGround{
			TileWidth: 120,
		},
		Score: DinoScore{
			GranularityMS: 100,
		},
		Input: DinoInput{
			JumpHoldMS: 120,
			DuckHoldMS: 750,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
