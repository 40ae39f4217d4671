package game

// Scoreboard tracks the running rally and the best rally seen at a restart.
type Scoreboard struct {
	Score int `json:"score"`
	Best  int `json:"best"`
}

// Reset closes the current rally: Best keeps the larger of the two, Score restarts at 0.
func (s *Scoreboard) Reset() {
	if s.Score > s.Best {
		s.Best = s.Score
	}
	s.Score = 0
}

// CountHits adds one point per paddle carrying a hit marker.
func (s *Scoreboard) CountHits(paddles []*Paddle) int {
	counted := 0
	for _, paddle := range paddles {
		if paddle != nil && paddle.Hit != nil {
			counted++
		}
	}
	s.Score += counted
	return counted
}
