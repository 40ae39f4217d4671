// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configurable arena parameters.
type Config struct {
	// Arena & Paddles
	OuterRadius  float64 `toml:"outer_radius"`  // Nominal radius of the outer paddle arc
	InnerRadius  float64 `toml:"inner_radius"`  // Nominal radius of the inner paddle arc
	OuterHeight  float64 `toml:"outer_height"`  // Radial thickness of the outer paddle
	InnerHeight  float64 `toml:"inner_height"`  // Radial thickness of the inner paddle
	SurfaceAngle float64 `toml:"surface_angle"` // Full angular width of both paddles (radians)

	// Ball Physics & Properties
	BallRadius   float64 `toml:"ball_radius"`
	BaseVelocity float64 `toml:"base_velocity"` // Speed at tier 0
	VelocityStep float64 `toml:"velocity_step"` // Speed added per confirmed hit
	SpawnX       float64 `toml:"spawn_x"`       // Spawn y is always -(outer+inner)/2
	SpawnDirX    float64 `toml:"spawn_dir_x"`   // Unnormalized spawn direction
	SpawnDirY    float64 `toml:"spawn_dir_y"`

	// Timing
	MinFrameDelta   float64       `toml:"min_frame_delta"`   // Seconds
	MaxFrameDelta   float64       `toml:"max_frame_delta"`   // Seconds
	FrameTickPeriod time.Duration `toml:"frame_tick_period"` // 0 disables the actor's own ticker

	// Input
	StickDeadZone float64 `toml:"stick_dead_zone"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		OuterRadius:  RadiusOuter,
		InnerRadius:  RadiusInner,
		OuterHeight:  PaddleHeightOuter,
		InnerHeight:  PaddleHeightInner,
		SurfaceAngle: PaddleSurface, // half = Pi/12 on each side of the aim

		BallRadius:   BallRadius,
		BaseVelocity: BaseBallVelocity,
		VelocityStep: BallVelocityStep,
		SpawnX:       SpawnX,
		SpawnDirX:    0.5,
		SpawnDirY:    -0.5,

		MinFrameDelta:   MinFrameDelta,
		MaxFrameDelta:   MaxFrameDelta,
		FrameTickPeriod: 0,

		StickDeadZone: StickDeadZone,
	}
}

// SpawnPoint is the fixed point where every rally's ball appears.
func (c Config) SpawnPoint() Vector {
	return Vector{X: c.SpawnX, Y: -(c.OuterRadius + c.InnerRadius) / 2}
}

// SpawnDirection is the normalized initial travel direction.
func (c Config) SpawnDirection() Vector {
	return Normalize(Vector{X: c.SpawnDirX, Y: c.SpawnDirY})
}

// ClampDelta bounds a raw frame delta to [MinFrameDelta, MaxFrameDelta].
func (c Config) ClampDelta(delta float64) float64 {
	if math.IsNaN(delta) {
		return c.MinFrameDelta
	}
	return math.Max(c.MinFrameDelta, math.Min(c.MaxFrameDelta, delta))
}

// Validate reports the first inconsistency in the config.
func (c Config) Validate() error {
	switch {
	case c.InnerRadius <= 0:
		return fmt.Errorf("%w: inner_radius must be positive, got %v", ErrInvalidConfig, c.InnerRadius)
	case c.OuterRadius <= c.InnerRadius:
		return fmt.Errorf("%w: outer_radius %v must exceed inner_radius %v", ErrInvalidConfig, c.OuterRadius, c.InnerRadius)
	case c.OuterHeight <= 0 || c.InnerHeight <= 0:
		return fmt.Errorf("%w: paddle heights must be positive", ErrInvalidConfig)
	case c.SurfaceAngle <= 0 || c.SurfaceAngle >= TwoPi:
		return fmt.Errorf("%w: surface_angle must be in (0, 2pi), got %v", ErrInvalidConfig, c.SurfaceAngle)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ball_radius must be positive, got %v", ErrInvalidConfig, c.BallRadius)
	case c.BaseVelocity <= 0 || c.VelocityStep < 0:
		return fmt.Errorf("%w: base_velocity must be positive and velocity_step non-negative", ErrInvalidConfig)
	case c.SpawnDirX == 0 && c.SpawnDirY == 0:
		return fmt.Errorf("%w: spawn direction cannot be zero", ErrInvalidConfig)
	case c.MinFrameDelta <= 0 || c.MaxFrameDelta < c.MinFrameDelta:
		return fmt.Errorf("%w: need 0 < min_frame_delta <= max_frame_delta, got %v and %v", ErrInvalidConfig, c.MinFrameDelta, c.MaxFrameDelta)
	case c.FrameTickPeriod < 0:
		return fmt.Errorf("%w: frame_tick_period cannot be negative", ErrInvalidConfig)
	case c.StickDeadZone < 0 || c.StickDeadZone >= 1:
		return fmt.Errorf("%w: stick_dead_zone must be in [0, 1)", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %v", ErrInvalidConfig, path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
