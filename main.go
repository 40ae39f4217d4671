package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lguibr/keepinside/bollywood"
	"github.com/lguibr/keepinside/game"
	"github.com/lguibr/keepinside/render"
	"github.com/lguibr/keepinside/utils"
)

const askTimeout = 2 * time.Second

// fxLogger stands in for the hit-flash animation and prints every hit.
type fxLogger struct{}

func (f *fxLogger) Receive(ctx bollywood.Context) {
	switch m := ctx.Message().(type) {
	case game.HitNotification:
		fmt.Printf("frame %d: paddle %d hit at %v\n", m.Frame, m.Hit.Paddle, m.Hit.Point)
	case game.FrameCompleted:
		fmt.Printf("frame %d: score %s (%s)\n", m.Frame, render.ScoreText(m.Score), render.BestText(m.Best))
	}
}

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	frames := flag.Int("frames", 600, "number of frames to simulate")
	delta := flag.Float64("delta", utils.MinFrameDelta, "seconds per frame")
	autopilot := flag.Bool("autopilot", true, "aim every paddle at the ball and restart lost rallies")
	asJSON := flag.Bool("json", false, "print the final state as JSON")
	resolution := flag.Int("render", 0, "draw the arena every frame at this resolution (0 disables)")
	flag.Parse()

	cfg := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	// Frames are driven from here.
	cfg.FrameTickPeriod = 0

	engine := bollywood.NewEngine()
	defer engine.Shutdown(5 * time.Second)

	gamePID := engine.Spawn(bollywood.NewProps(game.NewGameActorProducer(cfg)))
	fxPID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return &fxLogger{} }))
	engine.Send(gamePID, game.SubscribeFx{PID: fxPID}, nil)
	engine.Send(gamePID, game.StartCommand{}, nil)

	state, err := askState(engine, gamePID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading game state:", err)
		os.Exit(1)
	}

	for i := 0; i < *frames; i++ {
		if *autopilot {
			steer(engine, gamePID, state, cfg)
		}
		if _, err := engine.Ask(gamePID, game.FrameTick{Delta: *delta}, askTimeout); err != nil {
			fmt.Fprintln(os.Stderr, "Error running frame:", err)
			os.Exit(1)
		}
		if state, err = askState(engine, gamePID); err != nil {
			fmt.Fprintln(os.Stderr, "Error reading game state:", err)
			os.Exit(1)
		}
		if *resolution > 0 {
			render.ClearScreen()
			fmt.Print(render.RenderArena(state, *resolution, true))
			fmt.Printf("%s\n%s\n", render.ScoreText(state.Score), render.BestText(state.Best))
		}
	}

	if *asJSON {
		out, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error Marshaling the game state:", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}
	fmt.Printf("frames: %d rallies: %d\n%s\n%s\n", state.Frame, state.Rallies, render.ScoreText(state.Score), render.BestText(state.Best))
}

// steer points every paddle at the ball the way the mouse does, and presses
// start once the ball has left the arena.
func steer(engine *bollywood.Engine, gamePID *bollywood.PID, state game.GameState, cfg utils.Config) {
	if state.Ball == nil {
		return
	}
	if utils.Length(state.Ball.Position) > cfg.OuterRadius+cfg.OuterHeight+cfg.BallRadius {
		engine.Send(gamePID, game.StartCommand{}, nil)
		return
	}
	engine.Send(gamePID, game.AimAllCommand{Angle: game.AimFromPointer(state.Ball.Position)}, nil)
}

func askState(engine *bollywood.Engine, pid *bollywood.PID) (game.GameState, error) {
	reply, err := engine.Ask(pid, game.GetStateRequest{}, askTimeout)
	if err != nil {
		return game.GameState{}, err
	}
	state, ok := reply.(game.GameState)
	if !ok {
		return game.GameState{}, fmt.Errorf("unexpected reply %T", reply)
	}
	return state, nil
}
