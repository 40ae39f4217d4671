// File: game/messages.go
package game

import (
	"github.com/lguibr/keepinside/bollywood"
	"github.com/lguibr/keepinside/utils"
)

// --- Snapshot Types ---

// PaddleState is the read-only view of a paddle handed to renderers.
type PaddleState struct {
	Index            int     `json:"index"`
	RadiusOrigin     float64 `json:"radiusOrigin"`
	HalfHeight       float64 `json:"halfHeight"`
	HalfSurfaceAngle float64 `json:"halfSurfaceAngle"`
	AngleOrigin      float64 `json:"angleOrigin"`
	AngleSpeed       float64 `json:"angleSpeed"`
	ArcStart         float64 `json:"arcStart"`
	ArcEnd           float64 `json:"arcEnd"`
	Hit              *Hit    `json:"hit,omitempty"`
}

func NewPaddleState(paddle *Paddle) PaddleState {
	state := PaddleState{
		Index:            paddle.Index,
		RadiusOrigin:     paddle.RadiusOrigin,
		HalfHeight:       paddle.HalfHeight,
		HalfSurfaceAngle: paddle.HalfSurfaceAngle,
		AngleOrigin:      paddle.AngleOrigin,
		AngleSpeed:       paddle.AngleSpeed,
		ArcStart:         paddle.ArcStart(),
		ArcEnd:           paddle.ArcEnd(),
	}
	if paddle.Hit != nil {
		hit := *paddle.Hit
		state.Hit = &hit
	}
	return state
}

// BallState is the read-only view of the ball.
type BallState struct {
	Position          utils.Vector `json:"position"`
	MvtDir            utils.Vector `json:"mvtDir"`
	VelocityIndicator int          `json:"velocityIndicator"`
	Velocity          float64      `json:"velocity"`
	Radius            float64      `json:"radius"`
}

func NewBallState(ball *Ball) BallState {
	return BallState{
		Position:          ball.Position,
		MvtDir:            ball.MvtDir,
		VelocityIndicator: ball.VelocityIndicator,
		Velocity:          ball.Velocity(),
		Radius:            ball.Radius,
	}
}

// GameState is a full copy of the arena after a frame.
type GameState struct {
	Frame   uint64                        `json:"frame"`
	Phase   Phase                         `json:"phase"`
	Score   int                           `json:"score"`
	Best    int                           `json:"best"`
	Rallies int                           `json:"rallies"`
	Paddles [utils.NumPaddles]PaddleState `json:"paddles"`
	Ball    *BallState                    `json:"ball,omitempty"`
}

// --- GameActor Messages ---

// AimCommand queues an aim sample for one paddle; the latest sample before a tick wins.
type AimCommand struct {
	Paddle int
	Angle  float64
}

// AimAllCommand queues the same aim sample for every paddle.
type AimAllCommand struct {
	Angle float64
}

// StickAimCommand queues a raw analog stick sample for every paddle. Samples
// inside the dead zone are dropped.
type StickAimCommand struct {
	X, Y float64
}

// StartCommand queues a start signal for the next frame.
type StartCommand struct{}

// FrameTick runs one frame with the queued input. Delta is in seconds.
type FrameTick struct {
	Delta float64
}

// GetStateRequest asks for the current GameState (use Engine.Ask).
type GetStateRequest struct{}

// SubscribeFx registers the actor that receives HitNotification messages.
type SubscribeFx struct {
	PID *bollywood.PID
}

// HitNotification tells the cosmetic effect collaborator a paddle was hit.
type HitNotification struct {
	Frame uint64
	Hit   Hit
}

// FrameCompleted is sent to the FX subscriber after every frame with hits,
// carrying the score text inputs.
type FrameCompleted struct {
	Frame uint64
	Score int
	Best  int
}
