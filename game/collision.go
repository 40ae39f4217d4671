package game

import (
	"github.com/lguibr/keepinside/utils"
)

// Collision is where and when, as a fraction of the frame, the ball met a paddle.
type Collision struct {
	Point        utils.Vector
	TimeFraction float64
}

// BandRadius is the face of the paddle band the ball meets when its distance
// from the center moves in the direction of mvtDirSign.
func (paddle *Paddle) BandRadius(mvtDirSign, ballRadius float64) float64 {
	return paddle.RadiusOrigin - mvtDirSign*(paddle.HalfHeight+ballRadius)
}

// FindCollisionPoint sweeps the ball from prev to cur and reports whether it
// crossed the paddle band inside the paddle's arc during that step.
// TimeFraction is radial: the share of the change in distance from the center,
// applied along the straight segment to place Point.
func FindCollisionPoint(cur, prev utils.Vector, ball *Ball, paddle *Paddle) (Collision, bool) {
	curDist := utils.Length(cur)
	prevDist := utils.Length(prev)
	if curDist == prevDist {
		return Collision{}, false
	}

	bandRadius := paddle.BandRadius(utils.Sign(curDist-prevDist), ball.Radius)

	crossed := (prevDist < bandRadius && bandRadius <= curDist) ||
		(prevDist > bandRadius && bandRadius >= curDist)
	if !crossed {
		return Collision{}, false
	}

	ratio := (bandRadius - prevDist) / (curDist - prevDist)
	point := utils.Lerp(prev, cur, ratio)

	if !paddle.Covers(utils.AngleOf(point)) {
		return Collision{}, false
	}
	return Collision{Point: point, TimeFraction: ratio}, true
}

// CollidePaddles checks the paddles in slot order against the ball's step from
// prev to the ball's current position. Each hit bounces the ball before the next
// paddle is checked, and the next sweep starts from the previous impact point.
func (ball *Ball) CollidePaddles(prev utils.Vector, paddles [utils.NumPaddles]*Paddle, delta float64) []Hit {
	var hits []Hit
	remaining := 1.0
	for _, paddle := range paddles {
		if paddle == nil {
			continue
		}
		collision, ok := FindCollisionPoint(ball.Position, prev, ball, paddle)
		if !ok {
			continue
		}
		hit := ball.Bounce(paddle, collision, delta, remaining)
		paddle.Hit = &hit
		hits = append(hits, hit)

		remaining *= 1 - collision.TimeFraction
		prev = collision.Point
	}
	return hits
}
