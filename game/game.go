// File: game/game.go
package game

import (
	"encoding/json"
	"fmt"

	"github.com/lguibr/keepinside/utils"
)

// Aim is an optional aim sample for one frame.
type Aim struct {
	Angle float64
	Ok    bool
}

// AimAt wraps a raw (unnormalized) angle as a present sample.
func AimAt(angle float64) Aim {
	return Aim{Angle: angle, Ok: true}
}

// FrameInput is everything the outside world feeds into one frame.
type FrameInput struct {
	Delta  float64               // Raw frame time in seconds, clamped by Step
	AimAll Aim                   // Applied to every paddle, like the pointer does
	Aims   [utils.NumPaddles]Aim // Per-paddle samples, applied after AimAll
	Start  bool                  // Edge-triggered start signal
}

// FrameResult summarizes what one Step did.
type FrameResult struct {
	Frame   uint64
	Delta   float64 // Clamped delta actually used
	Started bool
	Hits    []Hit
}

// Game is the whole arena: two paddles in fixed slot order, at most one ball,
// and the scoreboard. It is not safe for concurrent use; GameActor serializes access.
type Game struct {
	cfg        utils.Config
	Paddles    [utils.NumPaddles]*Paddle
	Ball       *Ball
	Scoreboard Scoreboard
	Phase      Phase
	Frame      uint64
	Rallies    int
}

// NewGame creates an idle arena with both paddles facing angle 0.
func NewGame(cfg utils.Config) *Game {
	return &Game{
		cfg:     cfg,
		Paddles: NewPaddles(cfg),
		Phase:   PhaseIdle,
	}
}

func (g *Game) Config() utils.Config { return g.cfg }

// Step advances the arena by one frame: start signal, aim, integrate, collide
// and score, in that order.
func (g *Game) Step(input FrameInput) FrameResult {
	delta := g.cfg.ClampDelta(input.Delta)
	g.Frame++
	result := FrameResult{Frame: g.Frame, Delta: delta}

	for _, paddle := range g.Paddles {
		paddle.Hit = nil
	}

	if input.Start {
		g.Start()
		result.Started = true
	}

	g.applyAims(input)

	if g.Phase != PhasePlaying || g.Ball == nil {
		return result
	}

	prev := g.Ball.Move(delta)
	result.Hits = g.Ball.CollidePaddles(prev, g.Paddles, delta)
	g.Scoreboard.CountHits(g.Paddles[:])
	return result
}

func (g *Game) applyAims(input FrameInput) {
	for i, paddle := range g.Paddles {
		switch {
		case input.Aims[i].Ok:
			paddle.SetAngle(input.Aims[i].Angle)
		case input.AimAll.Ok:
			paddle.SetAngle(input.AimAll.Angle)
		}
	}
}

// Hits lists the hit markers left by the last Step, in paddle order.
func (g *Game) Hits() []Hit {
	var hits []Hit
	for _, paddle := range g.Paddles {
		if paddle.Hit != nil {
			hits = append(hits, *paddle.Hit)
		}
	}
	return hits
}

// Snapshot copies the state external collaborators read for drawing and display.
func (g *Game) Snapshot() GameState {
	state := GameState{
		Frame:   g.Frame,
		Phase:   g.Phase,
		Score:   g.Scoreboard.Score,
		Best:    g.Scoreboard.Best,
		Rallies: g.Rallies,
	}
	for i, paddle := range g.Paddles {
		state.Paddles[i] = NewPaddleState(paddle)
	}
	if g.Ball != nil {
		ball := NewBallState(g.Ball)
		state.Ball = &ball
	}
	return state
}

// ToJson marshals the current snapshot.
func (g *Game) ToJson() []byte {
	gameBytes, err := json.Marshal(g.Snapshot())
	if err != nil {
		fmt.Println("Error Marshaling the game state:", err)
		return []byte("{}")
	}
	return gameBytes
}
