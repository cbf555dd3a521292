package shooter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/engine"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
)

// isolate keeps user configs out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func newGame(t *testing.T, id string, cfg core.RuntimeConfig) *Game {
	t.Helper()
	isolate(t)
	g := New(id)
	g.Reset(cfg)
	return g
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestVariantsRegistered(t *testing.T) {
	want := map[string]string{
		"invasion":  "Alien Invasion",
		"hungryfox": "Hungry Fox",
		"sideways":  "Sideways Shooter",
		"penguin":   "Sliding Penguin",
	}

	for id, title := range want {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		if g.Title() != title {
			t.Errorf("Title() = %q, expected %q", g.Title(), title)
		}
		if _, ok := g.(registry.Configurable); !ok {
			t.Errorf("%s should accept config files", id)
		}
		if _, ok := g.(registry.Observable); !ok {
			t.Errorf("%s should publish events", id)
		}
	}
}

func TestResetStartsInMenu(t *testing.T) {
	g := newGame(t, "invasion", core.DefaultConfig())

	st := g.State()
	if st.Phase != "menu" || st.GameOver || st.Paused {
		t.Errorf("State() after Reset = %+v, expected menu", st)
	}

	res := g.Step(press(core.ActionConfirm))
	if res.State.Phase != "playing" {
		t.Errorf("Phase after Confirm = %q, expected playing", res.State.Phase)
	}
	if res.State.Lives != 4 || res.State.Level != 1 {
		t.Errorf("medium run = %d lives, level %d; expected 4 lives, level 1", res.State.Lives, res.State.Level)
	}
}

func TestResetAppliesDifficulty(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Difficulty = "hard"
	g := newGame(t, "penguin", cfg)

	res := g.Step(press(core.ActionConfirm))
	if res.State.Lives != 3 || res.State.Difficulty != "hard" {
		t.Errorf("hard run = %d lives on %q, expected 3 lives on hard", res.State.Lives, res.State.Difficulty)
	}

	// Unknown names fall back to medium
	cfg.Difficulty = "nightmare"
	g.Reset(cfg)
	if got := g.State().Difficulty; got != "medium" {
		t.Errorf("Difficulty = %q, expected medium", got)
	}
}

func TestPauseAndQuit(t *testing.T) {
	g := newGame(t, "sideways", core.DefaultConfig())
	g.Step(press(core.ActionConfirm))

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused || res.State.Phase != "paused" {
		t.Errorf("State after Pause = %+v, expected paused", res.State)
	}

	res = g.Step(press(core.ActionQuit))
	if !res.State.Quit {
		t.Error("Quit should be reported after ActionQuit")
	}

	g.Reset(core.DefaultConfig())
	if g.State().Quit {
		t.Error("Reset should clear Quit")
	}
}

func TestHighScoreCarriesOver(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.HighScore = 1200
	g := newGame(t, "hungryfox", cfg)

	if got := g.State().HighScore; got != 1200 {
		t.Fatalf("HighScore = %d, expected 1200", got)
	}

	cfg.HighScore = 0
	g.Reset(cfg)
	if got := g.State().HighScore; got != 1200 {
		t.Errorf("HighScore after Reset = %d, expected 1200 to carry over", got)
	}
}

func TestListenerReceivesEvents(t *testing.T) {
	g := newGame(t, "invasion", core.DefaultConfig())

	var kinds []engine.EventKind
	g.AddListener(engine.ListenerFunc(func(ev engine.Event) {
		kinds = append(kinds, ev.Kind)
	}))

	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionFire))

	if len(kinds) == 0 || kinds[0] != engine.EventRunStarted {
		t.Fatalf("events = %v, expected run-started first", kinds)
	}
	fired := false
	for _, k := range kinds {
		fired = fired || k == engine.EventFire
	}
	if !fired {
		t.Errorf("events = %v, expected a fire event", kinds)
	}

	// Listeners survive a Reset
	kinds = nil
	g.Reset(core.DefaultConfig())
	g.Step(press(core.ActionConfirm))
	if len(kinds) == 0 || kinds[0] != engine.EventRunStarted {
		t.Errorf("events after Reset = %v, expected run-started", kinds)
	}
}

func TestLoadConfig(t *testing.T) {
	isolate(t)
	g := New("invasion")

	if err := g.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("title: Custom Invasion\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := g.LoadConfig(path); err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	g.Reset(core.DefaultConfig())

	if g.Title() != "Custom Invasion" {
		t.Errorf("Title() = %q, expected Custom Invasion", g.Title())
	}
	if g.Config().Orientation != "vertical" {
		t.Error("fields missing from the file should keep their defaults")
	}
}

func TestRenderMenuAndPlay(t *testing.T) {
	g := newGame(t, "invasion", core.DefaultConfig())
	dst := core.NewScreen(80, 24)

	g.Render(dst)
	text := dst.String()
	if !strings.Contains(text, "Alien Invasion") || !strings.Contains(text, "Enter  play") {
		t.Errorf("menu render missing title or prompt:\n%s", text)
	}

	g.Step(press(core.ActionConfirm))
	g.Render(dst)
	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", dst.Row(0))
	}
	if !strings.ContainsRune(dst.Row(23), '▲') {
		t.Errorf("bottom row = %q, expected the avatar", dst.Row(23))
	}
	if !strings.ContainsRune(dst.String(), 'W') {
		t.Error("the fleet should be visible while playing")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    string
	}{
		{"submenu", []core.Action{core.ActionMenu}, "choose difficulty"},
		{"difficulty", []core.Action{core.ActionMenu, core.ActionConfirm}, "> 2  Medium"},
		{"paused", []core.Action{core.ActionConfirm, core.ActionPause}, "PAUSED"},
		{"restart armed", []core.Action{core.ActionConfirm, core.ActionPause, core.ActionMenu, core.ActionConfirm, core.ActionHard}, "restart with this difficulty"},
		{"quick select while paused", []core.Action{core.ActionConfirm, core.ActionPause, core.ActionHard}, "R      restart"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, "sideways", core.DefaultConfig())
			for _, a := range tc.actions {
				g.Step(press(a))
			}
			dst := core.NewScreen(80, 24)
			g.Render(dst)
			if !strings.Contains(dst.String(), tc.want) {
				t.Errorf("render missing %q:\n%s", tc.want, dst.String())
			}
		})
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newGame(t, "penguin", core.DefaultConfig())
	g.Step(press(core.ActionConfirm))

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Render panicked on a tiny screen: %v", r)
		}
	}()
	for _, size := range [][2]int{{1, 1}, {10, 3}, {0, 0}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}

func TestDeterministicReplay(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 99

	run := func() uint64 {
		g := newGame(t, "sideways", cfg)
		g.Step(press(core.ActionConfirm))
		for i := 0; i < 600; i++ {
			f := core.NewInputFrame()
			if i%7 == 0 {
				f.Set(core.ActionFire)
			}
			if i%50 < 25 {
				f.Set(core.ActionUp)
			} else {
				f.Set(core.ActionDown)
			}
			g.Step(f)
		}
		return g.Snapshot().Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("replays diverged: %x != %x", a, b)
	}
}

func TestResetReportsIgnoredConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "penguin.yaml"), []byte("playfield: [1, 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g := New("penguin")
	if _, ok := any(g).(registry.ConfigReporter); !ok {
		t.Fatal("Game should report ignored config files")
	}
	g.Reset(core.DefaultConfig())

	if len(g.ConfigWarnings()) != 1 {
		t.Errorf("ConfigWarnings() = %v, expected one ignored file", g.ConfigWarnings())
	}
	if g.Title() != "Sliding Penguin" {
		t.Errorf("Title() = %q, expected the built-in tuning", g.Title())
	}
}
