// File: game/paddle_test.go
package game

import (
	"math"
	"testing"

	"github.com/lguibr/keepinside/utils"
	"github.com/stretchr/testify/assert"
)

func TestPaddle_SetAngle(t *testing.T) {
	testCases := []struct {
		name          string
		from, to      float64
		expectedAngle float64
		expectedSpeed float64
	}{
		{"Forward", 0.5, 1.0, 1.0, 0.5},
		{"Backward", 1.0, 0.25, 0.25, -0.75},
		{"WrapDownAcrossSeam", 0.1, utils.TwoPi - 0.1, utils.TwoPi - 0.1, -0.2},
		{"WrapUpAcrossSeam", utils.TwoPi - 0.1, 0.1, 0.1, 0.2},
		{"NegativeInputNormalized", 0, -math.Pi / 2, 3 * math.Pi / 2, -math.Pi / 2},
		{"LargeInputNormalized", 0, 4*math.Pi + 0.3, 0.3, 0.3},
		{"NoMovement", 2, 2, 2, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paddle := NewPaddle(utils.OuterPaddle, utils.RadiusOuter, utils.PaddleHeightOuter, utils.PaddleSurface)
			paddle.AngleOrigin = tc.from
			paddle.SetAngle(tc.to)
			assert.InDelta(t, tc.expectedAngle, paddle.AngleOrigin, 1e-9)
			assert.InDelta(t, tc.expectedSpeed, paddle.AngleSpeed, 1e-9)
			assert.LessOrEqual(t, math.Abs(paddle.AngleSpeed), math.Pi)
		})
	}
}

func TestPaddle_SetAngleSpeedBounded(t *testing.T) {
	paddle := NewPaddle(utils.InnerPaddle, utils.RadiusInner, utils.PaddleHeightInner, utils.PaddleSurface)
	for i := 0; i < 200; i++ {
		paddle.SetAngle(float64(i) * 1.37)
		if math.Abs(paddle.AngleSpeed) > math.Pi+1e-12 {
			t.Fatalf("step %d: |AngleSpeed| = %f exceeds pi", i, math.Abs(paddle.AngleSpeed))
		}
		if paddle.AngleOrigin < 0 || paddle.AngleOrigin >= utils.TwoPi {
			t.Fatalf("step %d: AngleOrigin %f outside [0, 2pi)", i, paddle.AngleOrigin)
		}
	}
}

func TestPaddle_SpeedHeldUntilNextAim(t *testing.T) {
	paddle := NewPaddle(utils.OuterPaddle, utils.RadiusOuter, utils.PaddleHeightOuter, utils.PaddleSurface)
	paddle.SetAngle(0.4)
	assert.InDelta(t, 0.4, paddle.AngleSpeed, 1e-9)

	// A frame with no aim sample leaves the last delta in place.
	game := NewGame(utils.DefaultConfig())
	game.Paddles[0] = paddle
	game.Step(FrameInput{Delta: utils.MinFrameDelta})
	assert.InDelta(t, 0.4, paddle.AngleSpeed, 1e-9)
}

func TestPaddle_Covers(t *testing.T) {
	half := utils.PaddleSurface / 2
	testCases := []struct {
		name     string
		origin   float64
		angle    float64
		expected bool
	}{
		{"Center", 1, 1, true},
		{"InsideEdge", 1, 1 + half - 1e-6, true},
		{"OutsideEdge", 1, 1 + half + 1e-3, false},
		{"Opposite", 1, 1 + math.Pi, false},
		{"AcrossSeamBelow", 0.05, utils.TwoPi - 0.1, true},
		{"AcrossSeamAbove", utils.TwoPi - 0.05, 0.1, true},
		{"UnnormalizedQuery", 0, -0.1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paddle := NewPaddle(utils.OuterPaddle, utils.RadiusOuter, utils.PaddleHeightOuter, utils.PaddleSurface)
			paddle.AngleOrigin = tc.origin
			assert.Equal(t, tc.expected, paddle.Covers(tc.angle))
		})
	}
}

func TestPaddle_Arc(t *testing.T) {
	paddle := NewPaddle(utils.OuterPaddle, utils.RadiusOuter, utils.PaddleHeightOuter, utils.PaddleSurface)
	assert.InDelta(t, math.Pi/12, paddle.HalfSurfaceAngle, 1e-12)
	assert.InDelta(t, 6.0, paddle.HalfHeight, 1e-12)

	paddle.SetAngle(0)
	assert.InDelta(t, utils.TwoPi-math.Pi/12, paddle.ArcStart(), 1e-9)
	assert.InDelta(t, math.Pi/12, paddle.ArcEnd(), 1e-9)
}

func TestNewPaddles(t *testing.T) {
	paddles := NewPaddles(utils.DefaultConfig())
	assert.Equal(t, utils.OuterPaddle, paddles[0].Index)
	assert.Equal(t, utils.InnerPaddle, paddles[1].Index)
	assert.Equal(t, float64(utils.RadiusOuter), paddles[0].RadiusOrigin)
	assert.Equal(t, float64(utils.RadiusInner), paddles[1].RadiusOrigin)
	assert.InDelta(t, 2.0, paddles[1].HalfHeight, 1e-12)
	for _, paddle := range paddles {
		assert.Zero(t, paddle.AngleOrigin)
		assert.Zero(t, paddle.AngleSpeed)
		assert.Nil(t, paddle.Hit)
	}
}
