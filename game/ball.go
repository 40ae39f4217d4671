package game

import (
	"fmt"

	"github.com/lguibr/keepinside/utils"
)

type Ball struct {
	Position          utils.Vector `json:"position"`
	MvtDir            utils.Vector `json:"mvtDir"` // Unit direction of travel
	VelocityIndicator int          `json:"velocityIndicator"`
	Radius            float64      `json:"radius"`

	baseVelocity float64
	velocityStep float64
}

// NewBall places a tier-zero ball at the spawn point heading along the spawn direction.
func NewBall(cfg utils.Config) *Ball {
	return &Ball{
		Position:     cfg.SpawnPoint(),
		MvtDir:       cfg.SpawnDirection(),
		Radius:       cfg.BallRadius,
		baseVelocity: cfg.BaseVelocity,
		velocityStep: cfg.VelocityStep,
	}
}

// Velocity is the ball speed in world units per second. It only grows during a rally.
func (ball *Ball) Velocity() float64 {
	return ball.baseVelocity + ball.velocityStep*float64(ball.VelocityIndicator)
}

// Move integrates the position over delta seconds and returns the previous position.
func (ball *Ball) Move(delta float64) utils.Vector {
	previous := ball.Position
	ball.Position = utils.SumVectors(ball.Position, utils.MultiplyVectorByScalar(ball.MvtDir, ball.Velocity()*delta))
	return previous
}

func (ball *Ball) String() string {
	return fmt.Sprintf("Ball{pos=%v dir=%v tier=%d}", ball.Position, ball.MvtDir, ball.VelocityIndicator)
}
