package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shooter-arcade/internal/registry"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

var boardGames = []registry.GameInfo{
	{ID: "invasion", Title: "Alien Invasion"},
	{ID: "sideways", Title: "Sideways Shooter"},
}

func seededBoard(t *testing.T) ScoreboardModel {
	t.Helper()
	svc := testServices(t)
	runs := []storage.RunRecord{
		{GameID: "invasion", Score: 300, Level: 2, Difficulty: "easy"},
		{GameID: "invasion", Score: 900, Level: 4, Difficulty: "hard"},
		{GameID: "invasion", Score: 500, Level: 3, Difficulty: "medium"},
		{GameID: "sideways", Score: 120, Level: 1, Difficulty: "medium"},
	}
	for _, r := range runs {
		if _, err := svc.Store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return newScoreboard(svc.Store, boardGames, 100, 30)
}

func press(t *testing.T, m ScoreboardModel, k string) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(keyMsg(k))
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected ScoreboardModel", next)
	}
	return sb
}

func TestScoreboardBestRuns(t *testing.T) {
	m := seededBoard(t)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, expected 3", len(rows))
	}
	if rows[0][1] != "900" || rows[0][3] != "hard" {
		t.Errorf("first row = %v, expected the 900 point hard run", rows[0])
	}
	if m.stats == nil || m.stats.RunsCount != 3 {
		t.Errorf("stats = %+v, expected 3 runs", m.stats)
	}
	if !strings.Contains(m.View(), "Alien Invasion") {
		t.Error("View() should name the selected game")
	}
}

func TestScoreboardDifficultyFilter(t *testing.T) {
	m := seededBoard(t)

	m = press(t, m, "f") // easy
	if len(m.runs) != 1 || m.runs[0].Score != 300 {
		t.Errorf("easy runs = %+v, expected only the 300 point run", m.runs)
	}

	m = press(t, m, "f") // medium
	m = press(t, m, "f") // hard
	m = press(t, m, "f") // all
	if len(m.runs) != 3 {
		t.Errorf("runs after full cycle = %d, expected 3", len(m.runs))
	}
}

func TestScoreboardSwitchGames(t *testing.T) {
	m := seededBoard(t)

	m = press(t, m, "tab")
	if m.currentGame() != "sideways" || len(m.runs) != 1 {
		t.Errorf("after tab: game %q with %d runs, expected sideways with 1", m.currentGame(), len(m.runs))
	}

	m = press(t, m, "tab")
	if m.currentGame() != "invasion" {
		t.Errorf("tab should wrap around, got %q", m.currentGame())
	}
}

func TestScoreboardRecentRuns(t *testing.T) {
	m := seededBoard(t)

	m = press(t, m, "r")
	rows := m.table.Rows()
	if len(rows) != 4 {
		t.Fatalf("recent rows = %d, expected 4", len(rows))
	}
	if rows[0][0] != "Sideways Shooter" {
		t.Errorf("newest run is from %q, expected Sideways Shooter", rows[0][0])
	}

	m = press(t, m, "tab")
	if m.recent {
		t.Error("switching games should return to the best runs")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := seededBoard(t)

	back := press(t, m, "b")
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("b should go back to the menu")
	}

	quit := press(t, m, "q")
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := newScoreboard(nil, boardGames, 60, 20)

	if len(m.runs) != 0 {
		t.Errorf("runs = %d, expected none without a store", len(m.runs))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("View() should show the empty message")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	if next.(ScoreboardModel).width != 40 {
		t.Error("resize should update the width")
	}
}
