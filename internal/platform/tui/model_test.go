package tui

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/export"
	"github.com/vovakirdan/termtris/internal/storage"
	"github.com/vovakirdan/termtris/internal/tetris"
)

type fakeStore struct {
	high    int
	readErr error
	submits []storage.Result
}

func (f *fakeStore) HighScore() (int, error) {
	return f.high, f.readErr
}

func (f *fakeStore) Submit(r storage.Result) (bool, error) {
	f.submits = append(f.submits, r)
	if r.Score > f.high {
		f.high = r.Score
		return true, nil
	}
	return false, nil
}

func (f *fakeStore) Close() error { return nil }

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	opts.Game = config.DefaultTetrisConfig()
	opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	opts.Logger = log.New(io.Discard)
	return NewModel(opts)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func start(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, runeKey('x'))
	m, _ = send(t, m, TickMsg(t0))
	return m
}

func TestTitleScreenWaitsForKey(t *testing.T) {
	m := newTestModel(t, Options{})

	if !strings.Contains(m.View(), "Press any key to begin") {
		t.Fatal("title screen not shown")
	}

	m, _ = send(t, m, TickMsg(t0))
	m, _ = send(t, m, TickMsg(t0.Add(5*time.Second)))
	if got := m.Session().Snapshot().Tick; got != 0 {
		t.Errorf("session ticked %d times before start", got)
	}

	m = start(t, m)
	if strings.Contains(m.View(), "Press any key to begin") {
		t.Error("title screen still shown after a key")
	}
	if got := m.Session().Current().Y; got != tetris.SpawnY {
		t.Errorf("first tick after start moved the piece to y=%d", got)
	}

	m, _ = send(t, m, TickMsg(t0.Add(time.Second)))
	if got := m.Session().Current().Y; got != tetris.SpawnY+1 {
		t.Errorf("piece at y=%d after one interval, want %d", got, tetris.SpawnY+1)
	}
}

func TestHighScoreLoadedFromStore(t *testing.T) {
	m := newTestModel(t, Options{Store: &fakeStore{high: 700}})

	if got := m.Session().HighScore(); got != 700 {
		t.Errorf("HighScore() = %d, want 700", got)
	}
	if !strings.Contains(m.View(), "High score: 700") {
		t.Error("title screen does not show the stored high score")
	}
}

func TestUnreadableStoreReadsAsZero(t *testing.T) {
	m := newTestModel(t, Options{Store: &fakeStore{high: 50, readErr: errors.New("disk gone")}})
	if got := m.Session().HighScore(); got != 0 {
		t.Errorf("HighScore() = %d, want 0", got)
	}
}

func TestKeysApplyOnNextTick(t *testing.T) {
	m := start(t, newTestModel(t, Options{}))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Session().Current().X; got != tetris.SpawnX {
		t.Fatalf("piece moved before the tick: x=%d", got)
	}

	m, _ = send(t, m, TickMsg(t0.Add(10*time.Millisecond)))
	if got := m.Session().Current().X; got != tetris.SpawnX-2 {
		t.Errorf("x = %d after two lefts, want %d", got, tetris.SpawnX-2)
	}
}

func TestPauseShowsMessage(t *testing.T) {
	m := start(t, newTestModel(t, Options{}))

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg(t0.Add(10*time.Millisecond)))

	if !m.gameState.Paused {
		t.Fatal("session not paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("pause message not shown")
	}
}

// fillForGameOver leaves only row 0 and column 0 empty so the next piece
// locks in the top row.
func fillForGameOver(b *tetris.Board) {
	for y := 1; y < tetris.Rows; y++ {
		for x := 1; x < tetris.Cols; x++ {
			b.Set(x, y, core.ColorGray)
		}
	}
}

func runUntilGameOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 1; i <= 30 && !m.gameState.GameOver; i++ {
		m, _ = send(t, m, TickMsg(t0.Add(time.Duration(i)*time.Second)))
	}
	if !m.gameState.GameOver {
		t.Fatal("game did not end")
	}
	return m
}

func TestGameOverSubmitsOnceAndRestarts(t *testing.T) {
	store := &fakeStore{}
	m := start(t, newTestModel(t, Options{Store: store}))
	fillForGameOver(m.Session().Board())

	m = runUntilGameOver(t, m)
	if len(store.submits) != 1 {
		t.Fatalf("got %d submits, want 1", len(store.submits))
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over message not shown")
	}

	for i := range 5 {
		m, _ = send(t, m, TickMsg(t0.Add(time.Minute+time.Duration(i)*time.Second)))
	}
	if len(store.submits) != 1 {
		t.Errorf("got %d submits after more ticks, want 1", len(store.submits))
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.gameState.GameOver {
		t.Error("movement keys should not leave the game over screen")
	}

	m, _ = send(t, m, runeKey('r'))
	if m.gameState.GameOver {
		t.Fatal("restart did not start a new game")
	}
	if got := m.Session().Board().Len(); got != 0 {
		t.Errorf("board has %d cells after restart", got)
	}
	if m.scoreSaved {
		t.Error("scoreSaved not reset on restart")
	}
}

func TestQuitEndsWithoutSubmit(t *testing.T) {
	store := &fakeStore{}
	m := start(t, newTestModel(t, Options{Store: store}))

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit did not return tea.Quit")
	}
	if !m.Session().State().Quit {
		t.Error("session not in quit state")
	}
	if len(store.submits) != 0 {
		t.Errorf("quit submitted %d scores", len(store.submits))
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestScreenshotWritesFiles(t *testing.T) {
	dir := t.TempDir()
	exp, err := export.New(dir)
	if err != nil {
		t.Fatalf("export.New() failed: %v", err)
	}
	m := start(t, newTestModel(t, Options{Exporter: exp}))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d files, want text and png", len(entries))
	}
	if !strings.Contains(m.View(), "Saved to") {
		t.Error("status line not shown")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m := start(t, newTestModel(t, Options{}))
	m.Session().Board().Set(0, 19, core.ColorRed)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen is %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
	if m.Session().Board().Len() != 1 {
		t.Error("resize reset the board")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	short := m.View()

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("help not expanded")
	}
	if m.View() == short {
		t.Error("expanded help did not change the view")
	}
	if m.started {
		t.Error("help key should not start the game")
	}
}
