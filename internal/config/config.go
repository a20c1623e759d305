// Package config provides YAML-based game configuration loading for the
// Dino Runner. All per-frame values are tuned for core.ReferenceTickRate.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DinoConfig contains all configuration for the Dino Runner game.
type DinoConfig struct {
	Physics   DinoPhysics   `yaml:"physics"`
	Player    DinoPlayer    `yaml:"player"`
	Obstacles DinoObstacles `yaml:"obstacles"`
	Ground    DinoGround    `yaml:"ground"`
	Score     DinoScore     `yaml:"score"`
	Input     DinoInput     `yaml:"input"`
}

// DinoPhysics defines the motion parameters, in cells per frame.
type DinoPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration added to velocity each frame
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Leftward speed shared by obstacles and ground
}

// DinoPlayer defines player placement and animation.
type DinoPlayer struct {
	X              int     `yaml:"x"`               // Fixed left edge of the player
	GroundOffset   int     `yaml:"ground_offset"`   // Ground line distance from the screen bottom
	AnimationSpeed float64 `yaml:"animation_speed"` // Walk/duck frame index advance per frame
}

// DinoObstacles defines obstacle spawning and behaviour.
type DinoObstacles struct {
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Period of the spawn tick event
	SpawnJitter     int     `yaml:"spawn_jitter"`      // Max random offset past the right edge
	BirdAltitude    int     `yaml:"bird_altitude"`     // Bird bottom edge height above the ground line
	BirdFlapSpeed   float64 `yaml:"bird_flap_speed"`   // Bird frame index advance per frame
}

// DinoGround defines the scrolling ground tiles.
type DinoGround struct {
	TileWidth int `yaml:"tile_width"` // Minimum width of each of the two ground segments
}

// DinoScore defines how elapsed time maps to score.
type DinoScore struct {
	GranularityMS int `yaml:"granularity_ms"` // Milliseconds of survival per score point
}

// DinoInput defines how long a key press counts as held.
type DinoInput struct {
	JumpHoldMS int `yaml:"jump_hold_ms"`
	DuckHoldMS int `yaml:"duck_hold_ms"`
}

// SpawnInterval returns the obstacle spawn period.
func (c DinoConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Obstacles.SpawnIntervalMS) * time.Millisecond
}

// Granularity returns the survival time worth one score point.
func (c DinoConfig) Granularity() time.Duration {
	return time.Duration(c.Score.GranularityMS) * time.Millisecond
}

// JumpHold returns the hold window of the jump action.
func (c DinoConfig) JumpHold() time.Duration {
	return time.Duration(c.Input.JumpHoldMS) * time.Millisecond
}

// DuckHold returns the hold window of the duck action.
func (c DinoConfig) DuckHold() time.Duration {
	return time.Duration(c.Input.DuckHoldMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c DinoConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse))
	}
	if c.Physics.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.scroll_speed must be positive, got %v", c.Physics.ScrollSpeed))
	}
	if c.Player.GroundOffset < 1 {
		errs = append(errs, fmt.Errorf("player.ground_offset must be at least 1, got %d", c.Player.GroundOffset))
	}
	if c.Obstacles.SpawnIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS))
	}
	if c.Obstacles.SpawnJitter < 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_jitter must not be negative, got %d", c.Obstacles.SpawnJitter))
	}
	if c.Ground.TileWidth <= 0 {
		errs = append(errs, fmt.Errorf("ground.tile_width must be positive, got %d", c.Ground.TileWidth))
	}
	if c.Score.GranularityMS <= 0 {
		errs = append(errs, fmt.Errorf("score.granularity_ms must be positive, got %d", c.Score.GranularityMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid dino config: %w", errors.Join(errs...))
	}
	return nil
}
