// File: game/lifecycle.go
package game

// Phase is the rally state machine. There is no way back to PhaseIdle:
// a rally runs until the next start signal replaces it.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Start begins a new rally from either phase: the score rolls into Best, the old
// ball is dropped and a fresh tier-zero ball appears at the spawn point.
func (g *Game) Start() {
	g.Scoreboard.Reset()
	g.Ball = NewBall(g.cfg)
	g.Phase = PhasePlaying
	g.Rallies++
}
