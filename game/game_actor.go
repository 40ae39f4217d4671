// File: game/game_actor.go
package game

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/lguibr/keepinside/bollywood"
	"github.com/lguibr/keepinside/utils"
)

// GameActor owns one Game and serializes every access to it. Input commands
// are buffered and consumed by the next FrameTick, the same way the frame loop
// samples input once at the top of a frame.
type GameActor struct {
	cfg          utils.Config
	game         *Game
	pending      FrameInput
	fxPID        *bollywood.PID
	engine       *bollywood.Engine
	selfPID      *bollywood.PID
	ticker       *time.Ticker
	stopTickerCh chan struct{}
}

// NewGameActorProducer creates a producer for the GameActor.
func NewGameActorProducer(cfg utils.Config) bollywood.Producer {
	return func() bollywood.Actor {
		return &GameActor{
			cfg:          cfg,
			game:         NewGame(cfg),
			stopTickerCh: make(chan struct{}),
		}
	}
}

// Receive is the main message handler for the GameActor.
func (a *GameActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in GameActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
		a.engine = ctx.Engine()
	}

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		fmt.Printf("GameActor %s: Processing Started message.\n", a.selfPID)
		if a.cfg.FrameTickPeriod > 0 {
			a.ticker = time.NewTicker(a.cfg.FrameTickPeriod)
			go a.runTickerLoop(a.ticker)
		}

	case AimCommand:
		if m.Paddle < 0 || m.Paddle >= utils.NumPaddles {
			fmt.Printf("GameActor %s: Ignoring aim for unknown paddle %d.\n", a.selfPID, m.Paddle)
			return
		}
		a.pending.Aims[m.Paddle] = AimAt(m.Angle)

	case AimAllCommand:
		a.pending.AimAll = AimAt(m.Angle)

	case StickAimCommand:
		if angle, ok := AimFromStick(m.X, m.Y, a.cfg.StickDeadZone); ok {
			a.pending.AimAll = AimAt(angle)
		}

	case StartCommand:
		a.pending.Start = true

	case FrameTick:
		ctx.Reply(a.runFrame(ctx, m.Delta))

	case GetStateRequest:
		ctx.Reply(a.game.Snapshot())

	case SubscribeFx:
		a.fxPID = m.PID

	case bollywood.Stopping:
		fmt.Printf("GameActor %s: Processing Stopping message.\n", a.selfPID)
		a.stopTicker()

	case bollywood.Stopped:
		fmt.Printf("GameActor %s: Processing Stopped message.\n", a.selfPID)

	default:
		fmt.Printf("GameActor %s: Processing unknown message type: %T\n", a.selfPID, m)
	}
}

// runFrame steps the game with the buffered input and fans hit events out to
// the FX subscriber.
func (a *GameActor) runFrame(ctx bollywood.Context, delta float64) FrameResult {
	input := a.pending
	input.Delta = delta
	a.pending = FrameInput{}

	result := a.game.Step(input)
	if result.Started {
		fmt.Printf("GameActor %s: Rally %d started (best %d).\n", a.selfPID, a.game.Rallies, a.game.Scoreboard.Best)
	}
	if a.fxPID == nil || len(result.Hits) == 0 {
		return result
	}
	for _, hit := range result.Hits {
		ctx.Engine().Send(a.fxPID, HitNotification{Frame: result.Frame, Hit: hit}, a.selfPID)
	}
	ctx.Engine().Send(a.fxPID, FrameCompleted{
		Frame: result.Frame,
		Score: a.game.Scoreboard.Score,
		Best:  a.game.Scoreboard.Best,
	}, a.selfPID)
	return result
}

// runTickerLoop sends FrameTick messages to the actor's own mailbox at regular
// intervals. Each tick carries the wall-clock time since the previous one.
func (a *GameActor) runTickerLoop(ticker *time.Ticker) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in GameActor %s Ticker Loop: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	actorPID := a.selfPID
	engine := a.engine
	fmt.Printf("GameActor %s: Ticker loop started.\n", actorPID)
	defer fmt.Printf("GameActor %s: Ticker loop stopped.\n", actorPID)

	last := time.Now()
	for {
		select {
		case <-a.stopTickerCh:
			return
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			select {
			case <-a.stopTickerCh:
				return
			default:
				engine.Send(actorPID, FrameTick{Delta: delta}, nil)
			}
		}
	}
}

func (a *GameActor) stopTicker() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	select {
	case <-a.stopTickerCh:
	default:
		close(a.stopTickerCh)
	}
}
