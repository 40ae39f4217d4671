// File: game/game_actor_test.go

package game

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/lguibr/keepinside/bollywood"
	"github.com/lguibr/keepinside/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock FX Actor ---
// Captures every message the GameActor fans out.
type MockFxActor struct {
	mu       sync.Mutex
	Received []interface{}
}

func (a *MockFxActor) Receive(ctx bollywood.Context) {
	switch ctx.Message().(type) {
	case bollywood.Started, bollywood.Stopping, bollywood.Stopped:
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Received = append(a.Received, ctx.Message())
}

func (a *MockFxActor) GetMessages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	msgs := make([]interface{}, len(a.Received))
	copy(msgs, a.Received)
	return msgs
}

const (
	testAskTimeout      = 2 * time.Second
	testShutdownTimeout = 3 * time.Second
)

func spawnGameActor(t *testing.T, cfg utils.Config) (*bollywood.Engine, *bollywood.PID) {
	t.Helper()
	engine := bollywood.NewEngine()
	pid := engine.Spawn(bollywood.NewProps(NewGameActorProducer(cfg)))
	require.NotNil(t, pid)
	t.Cleanup(func() { engine.Shutdown(testShutdownTimeout) })
	return engine, pid
}

func askState(t *testing.T, engine *bollywood.Engine, pid *bollywood.PID) GameState {
	t.Helper()
	reply, err := engine.Ask(pid, GetStateRequest{}, testAskTimeout)
	require.NoError(t, err)
	state, ok := reply.(GameState)
	require.True(t, ok, "unexpected reply type %T", reply)
	return state
}

func askFrame(t *testing.T, engine *bollywood.Engine, pid *bollywood.PID, delta float64) FrameResult {
	t.Helper()
	reply, err := engine.Ask(pid, FrameTick{Delta: delta}, testAskTimeout)
	require.NoError(t, err)
	result, ok := reply.(FrameResult)
	require.True(t, ok, "unexpected reply type %T", reply)
	return result
}

func TestGameActor_InitialState(t *testing.T) {
	engine, pid := spawnGameActor(t, utils.DefaultConfig())

	state := askState(t, engine, pid)

	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Nil(t, state.Ball)
	assert.Zero(t, state.Frame)
	assert.Equal(t, 285.0, state.Paddles[utils.OuterPaddle].RadiusOrigin)
	assert.Equal(t, 108.0, state.Paddles[utils.InnerPaddle].RadiusOrigin)
}

func TestGameActor_CommandsWaitForTick(t *testing.T) {
	engine, pid := spawnGameActor(t, utils.DefaultConfig())

	engine.Send(pid, StartCommand{}, nil)
	engine.Send(pid, AimAllCommand{Angle: 1}, nil)
	engine.Send(pid, AimCommand{Paddle: utils.InnerPaddle, Angle: 2}, nil)

	before := askState(t, engine, pid)
	assert.Equal(t, PhaseIdle, before.Phase)
	assert.Zero(t, before.Paddles[0].AngleOrigin)

	result := askFrame(t, engine, pid, utils.MinFrameDelta)
	assert.True(t, result.Started)

	after := askState(t, engine, pid)
	assert.Equal(t, PhasePlaying, after.Phase)
	require.NotNil(t, after.Ball)
	assert.InDelta(t, 1.0, after.Paddles[utils.OuterPaddle].AngleOrigin, 1e-12)
	assert.InDelta(t, 2.0, after.Paddles[utils.InnerPaddle].AngleOrigin, 1e-12)
	assert.Equal(t, 1, after.Rallies)

	// The buffer is consumed: a second tick neither restarts nor re-aims.
	second := askFrame(t, engine, pid, utils.MinFrameDelta)
	assert.False(t, second.Started)
	assert.Equal(t, uint64(2), second.Frame)
}

func TestGameActor_StickAim(t *testing.T) {
	engine, pid := spawnGameActor(t, utils.DefaultConfig())

	engine.Send(pid, StickAimCommand{X: 0, Y: 0.5}, nil)
	askFrame(t, engine, pid, utils.MinFrameDelta)
	for _, paddle := range askState(t, engine, pid).Paddles {
		assert.Zero(t, paddle.AngleOrigin)
	}

	engine.Send(pid, StickAimCommand{X: -0.5, Y: 0.5}, nil)
	askFrame(t, engine, pid, utils.MinFrameDelta)
	for _, paddle := range askState(t, engine, pid).Paddles {
		assert.InDelta(t, 3*math.Pi/4, paddle.AngleOrigin, 1e-12)
	}
}

func TestGameActor_UnknownPaddleIgnored(t *testing.T) {
	engine, pid := spawnGameActor(t, utils.DefaultConfig())

	engine.Send(pid, AimCommand{Paddle: 5, Angle: 1}, nil)
	engine.Send(pid, AimCommand{Paddle: -1, Angle: 1}, nil)
	askFrame(t, engine, pid, utils.MinFrameDelta)

	state := askState(t, engine, pid)
	for _, paddle := range state.Paddles {
		assert.Zero(t, paddle.AngleOrigin)
	}
}

func TestGameActor_HitNotifications(t *testing.T) {
	cfg := utils.DefaultConfig()
	engine, pid := spawnGameActor(t, cfg)

	fx := &MockFxActor{}
	fxPID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return fx }))
	require.NotNil(t, fxPID)
	engine.Send(pid, SubscribeFx{PID: fxPID}, nil)

	aim := utils.AngleOf(spawnImpact(cfg))
	engine.Send(pid, StartCommand{}, nil)

	var hitFrame FrameResult
	for i := 0; i < 60; i++ {
		engine.Send(pid, AimAllCommand{Angle: aim}, nil)
		result := askFrame(t, engine, pid, utils.MinFrameDelta)
		if len(result.Hits) > 0 {
			hitFrame = result
			break
		}
	}
	require.Len(t, hitFrame.Hits, 1)

	assert.Eventually(t, func() bool {
		return len(fx.GetMessages()) >= 2
	}, testAskTimeout, 10*time.Millisecond)

	msgs := fx.GetMessages()
	notification, ok := msgs[0].(HitNotification)
	require.True(t, ok, "expected HitNotification, got %T", msgs[0])
	assert.Equal(t, hitFrame.Frame, notification.Frame)
	assert.Equal(t, utils.OuterPaddle, notification.Hit.Paddle)

	completed, ok := msgs[1].(FrameCompleted)
	require.True(t, ok, "expected FrameCompleted, got %T", msgs[1])
	assert.Equal(t, 1, completed.Score)

	state := askState(t, engine, pid)
	assert.Equal(t, 1, state.Score)
	require.NotNil(t, state.Ball)
	assert.Equal(t, 1, state.Ball.VelocityIndicator)
}

func TestGameActor_SelfTicker(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.FrameTickPeriod = 5 * time.Millisecond
	engine, pid := spawnGameActor(t, cfg)

	engine.Send(pid, StartCommand{}, nil)

	assert.Eventually(t, func() bool {
		reply, err := engine.Ask(pid, GetStateRequest{}, testAskTimeout)
		if err != nil {
			return false
		}
		state := reply.(GameState)
		return state.Phase == PhasePlaying && state.Frame >= 3
	}, testAskTimeout, 10*time.Millisecond)
}

func TestGameActor_StopRejectsAsk(t *testing.T) {
	engine, pid := spawnGameActor(t, utils.DefaultConfig())
	engine.Stop(pid)

	assert.Eventually(t, func() bool {
		_, err := engine.Ask(pid, GetStateRequest{}, 100*time.Millisecond)
		return errors.Is(err, bollywood.ErrActorNotFound)
	}, testAskTimeout, 10*time.Millisecond)
}
