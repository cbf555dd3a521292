package engine

// ScoreKeeper tracks the counters of a run. HighScore survives across runs.
type ScoreKeeper struct {
	Score     int
	Level     int
	Lives     int
	HighScore int
}

// NewScoreKeeper creates a keeper seeded with the stored high score.
func NewScoreKeeper(highScore int) ScoreKeeper {
	return ScoreKeeper{Level: 1, HighScore: highScore}
}

// Reset starts a new run with the given number of lives.
func (s *ScoreKeeper) Reset(lives int) {
	s.Score = 0
	s.Level = 1
	s.Lives = lives
}

// AddKill credits n destroyed opponents at perKill points each.
// Negative inputs are ignored so the score never decreases.
func (s *ScoreKeeper) AddKill(perKill, n int) {
	if perKill <= 0 || n <= 0 {
		return
	}
	s.Score += perKill * n
}

// CheckHighScore raises HighScore to Score when it was beaten and reports
// whether that happened.
func (s *ScoreKeeper) CheckHighScore() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

// LoseLife spends one life. It reports false, leaving Lives at zero, when
// none were left.
func (s *ScoreKeeper) LoseLife() bool {
	if s.Lives <= 0 {
		return false
	}
	s.Lives--
	return true
}
