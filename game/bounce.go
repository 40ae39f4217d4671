package game

import (
	"math"

	"github.com/lguibr/keepinside/utils"
)

// SpinImpact turns a paddle's per-frame angular delta into the spin term mixed
// into the bounce normal. delta is expected clamped (see Config.ClampDelta); a
// frame with no elapsed time carries no spin.
func SpinImpact(angleSpeed, delta float64) float64 {
	if delta <= 0 || math.IsNaN(delta) {
		return 0
	}
	return angleSpeed / (delta * utils.TwoPi)
}

// MirrorNormal is the inward surface normal at point, tilted along the paddle's
// rotation by speedImpact. The result is a unit vector.
func MirrorNormal(point utils.Vector, speedImpact float64) utils.Vector {
	normal := utils.Normalize(utils.Vector{X: -point.X, Y: -point.Y})
	mirror := utils.SumVectors(normal, utils.MultiplyVectorByScalar(utils.Perpendicular(normal), speedImpact))
	return utils.Normalize(mirror)
}

// Bounce reflects the ball off paddle at collision, bumps its speed tier and
// finishes the rest of the step from the impact point along the new direction.
// remaining is the share of the frame still unspent when the sweep began.
func (ball *Ball) Bounce(paddle *Paddle, collision Collision, delta, remaining float64) Hit {
	hit := Hit{
		Paddle:    paddle.Index,
		Direction: ball.MvtDir,
		Point:     collision.Point,
	}

	mirror := MirrorNormal(collision.Point, SpinImpact(paddle.AngleSpeed, delta))
	ball.MvtDir = utils.Reflect2D(ball.MvtDir, mirror)
	ball.VelocityIndicator++

	travel := (1 - collision.TimeFraction) * remaining * ball.Velocity() * delta
	ball.Position = utils.SumVectors(collision.Point, utils.MultiplyVectorByScalar(ball.MvtDir, travel))
	return hit
}
