// File: game/paddle.go
package game

import (
	"fmt"

	"github.com/lguibr/keepinside/utils"
)

// Paddle is a thin arc of the circle of radius RadiusOrigin, centered on AngleOrigin.
type Paddle struct {
	Index            int     `json:"index"`
	RadiusOrigin     float64 `json:"radiusOrigin"`
	HalfSurfaceAngle float64 `json:"halfSurfaceAngle"`
	HalfHeight       float64 `json:"halfHeight"`
	AngleOrigin      float64 `json:"angleOrigin"` // Always in [0, 2pi)
	AngleSpeed       float64 `json:"angleSpeed"`  // Shortest signed delta of the last SetAngle

	// Hit is set when the ball bounced on this paddle during the current frame.
	Hit *Hit `json:"hit,omitempty"`
}

// Hit is the per-frame marker left on a paddle by a confirmed collision.
type Hit struct {
	Paddle    int          `json:"paddle"`
	Direction utils.Vector `json:"direction"` // Ball direction before the bounce
	Point     utils.Vector `json:"point"`
}

// NewPaddle creates a paddle facing angle 0 with no angular speed.
func NewPaddle(index int, radius, height, surfaceAngle float64) *Paddle {
	return &Paddle{
		Index:            index,
		RadiusOrigin:     radius,
		HalfSurfaceAngle: surfaceAngle / 2,
		HalfHeight:       height / 2,
	}
}

// NewPaddles builds the two arena paddles in processing order.
func NewPaddles(cfg utils.Config) [utils.NumPaddles]*Paddle {
	return [utils.NumPaddles]*Paddle{
		utils.OuterPaddle: NewPaddle(utils.OuterPaddle, cfg.OuterRadius, cfg.OuterHeight, cfg.SurfaceAngle),
		utils.InnerPaddle: NewPaddle(utils.InnerPaddle, cfg.InnerRadius, cfg.InnerHeight, cfg.SurfaceAngle),
	}
}

// SetAngle aims the paddle at angle and records the rotation it took to get there,
// going the short way around the 0/2pi seam.
func (paddle *Paddle) SetAngle(angle float64) {
	previous := paddle.AngleOrigin
	target := utils.PositiveAngle(angle)
	paddle.AngleOrigin = target
	paddle.AngleSpeed = utils.ShortestAngleDelta(previous, target)
}

// Covers reports whether angle lies on the paddle's arc.
func (paddle *Paddle) Covers(angle float64) bool {
	return utils.AngularDistance(utils.PositiveAngle(angle), paddle.AngleOrigin) <= paddle.HalfSurfaceAngle
}

// ArcStart is the angle renderers start drawing the arc from.
func (paddle *Paddle) ArcStart() float64 {
	return utils.PositiveAngle(paddle.AngleOrigin - paddle.HalfSurfaceAngle)
}

// ArcEnd is the counter-clockwise end of the arc.
func (paddle *Paddle) ArcEnd() float64 {
	return utils.PositiveAngle(paddle.AngleOrigin + paddle.HalfSurfaceAngle)
}

func (paddle *Paddle) String() string {
	return fmt.Sprintf("Paddle[%d]{r=%.1f angle=%.3f speed=%.3f}", paddle.Index, paddle.RadiusOrigin, paddle.AngleOrigin, paddle.AngleSpeed)
}
