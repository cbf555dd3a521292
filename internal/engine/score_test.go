package engine

import "testing"

func TestScoreKeeper(t *testing.T) {
	s := NewScoreKeeper(120)
	s.Reset(3)

	if s.Score != 0 || s.Level != 1 || s.Lives != 3 || s.HighScore != 120 {
		t.Fatalf("after Reset: %+v", s)
	}

	s.AddKill(50, 2)
	if s.Score != 100 {
		t.Errorf("Score = %d, expected 100", s.Score)
	}
	if s.CheckHighScore() {
		t.Error("100 should not beat 120")
	}

	s.AddKill(50, 1)
	if !s.CheckHighScore() || s.HighScore != 150 {
		t.Errorf("HighScore = %d, expected 150", s.HighScore)
	}

	s.AddKill(-50, 1)
	s.AddKill(50, -1)
	if s.Score != 150 {
		t.Errorf("Score = %d, negative credits must be ignored", s.Score)
	}

	// High score survives a new run
	s.Reset(3)
	if s.HighScore != 150 || s.Score != 0 {
		t.Errorf("after second Reset: %+v", s)
	}
}

func TestLoseLife(t *testing.T) {
	s := NewScoreKeeper(0)
	s.Reset(1)

	if !s.LoseLife() || s.Lives != 0 {
		t.Fatalf("LoseLife() with one life left: Lives = %d", s.Lives)
	}
	if s.LoseLife() {
		t.Error("LoseLife() with no lives left should report false")
	}
	if s.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", s.Lives)
	}
}
