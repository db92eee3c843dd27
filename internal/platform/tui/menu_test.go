package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pedal-arcade/internal/core"
	"github.com/vovakirdan/pedal-arcade/internal/games/pedal"
	"github.com/vovakirdan/pedal-arcade/internal/games/platformer"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "arcade.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMenuListsGamesWithBest(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := openStore(t)
	if err := store.SaveHighScore(pedal.GameID+"-highscore", 88); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, testCfg)
	view := m.View()
	for _, want := range []string{"RetroPedal", "SaltaMuñeco", "best 88"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu should show %q:\n%s", want, view)
		}
	}
}

func TestBestFollowsConfiguredKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("storage:\n  high_score_key: my-pedal-best\n")
	if err := os.WriteFile(filepath.Join(dir, "retropedal.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	store := openStore(t)
	g := pedal.New()
	g.UseHighScoreStore(store)
	g.Reset(testCfg)

	in := core.NewInputFrame()
	for range 7 {
		in.Set(core.ActionPedal)
	}
	g.Step(core.Tick{Dt: 1.0 / 60, Now: time.Unix(1, 0), Input: in})

	if best, _ := store.LoadHighScore("my-pedal-best"); best != 7 {
		t.Fatalf("game saved best %d under the configured key, expected 7", best)
	}

	view := NewMenuModel(store, testCfg).View()
	if !strings.Contains(view, "best 7") {
		t.Errorf("menu should show the configured best:\n%s", view)
	}

	board := NewScoreboardModel(store, 100, 30)
	if got := board.summary(); !strings.HasPrefix(got, "Best: 7") {
		t.Errorf("scoreboard summary = %q, expected Best: 7", got)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testCfg)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	mm := next.(MenuModel)

	if cmd == nil {
		t.Fatal("selecting should quit the menu program")
	}
	sel := mm.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	// Games are listed by ID: retropedal, saltamuneco
	if sel.GameID != platformer.GameID {
		t.Errorf("selected %q, expected %q", sel.GameID, platformer.GameID)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, testCfg)

	var next tea.Model = m
	for range 5 {
		next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	if next.(MenuModel).cursor != 0 {
		t.Error("cursor should stop at the top")
	}
	for range 5 {
		next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if next.(MenuModel).cursor != len(m.items)-1 {
		t.Error("cursor should stop at the bottom")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testCfg)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(MenuModel).IsQuitting() || next.(MenuModel).View() != "" {
		t.Error("q should quit")
	}
}

func TestCenterTextIgnoresStyling(t *testing.T) {
	styled := menuTitleStyle.Render("abcd")
	got := centerText(styled, 10)
	if !strings.HasPrefix(got, "   ") || strings.HasPrefix(got, "    ") {
		t.Errorf("expected 3 spaces of padding, got %q", got)
	}
}

func TestScoreboardShowsRuns(t *testing.T) {
	store := openStore(t)
	runID, err := store.SaveScore(platformer.GameID, 120)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore(platformer.GameID, 80); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.games[m.cursor].ID != pedal.GameID {
		t.Fatalf("first game = %s", m.games[m.cursor].ID)
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("RetroPedal has no runs yet")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	view := m.View()
	for _, want := range []string{"Best: 120", "Runs: 2", "Avg: 100.0", runID[:8]} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard should show %q:\n%s", want, view)
		}
	}

	// Wraps around
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).cursor != 0 {
		t.Error("next game should wrap to the first")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "Best: 0") {
		t.Error("scoreboard should render without a database")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
