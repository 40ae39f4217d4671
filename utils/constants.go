package utils

import "math"

const (
	TwoPi = 2 * math.Pi

	RadiusOuter = 285.0
	RadiusInner = 108.0

	PaddleHeightOuter = 12.0
	PaddleHeightInner = 4.0
	PaddleSurface     = math.Pi / 6

	BallRadius = 5.0

	BaseBallVelocity = 410.0
	BallVelocityStep = 10.0

	MinFrameDelta = 1.0 / 60.0
	MaxFrameDelta = 1.0

	SpawnX = 10.0

	StickDeadZone = 0.03

	// NumPaddles is fixed: outer first, inner second.
	NumPaddles = 2
)

// Paddle slots, in collision processing order.
const (
	OuterPaddle = iota
	InnerPaddle
)
