package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// State is the phase of the session state machine.
type State int

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StatePaused
	StateGameOver
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Session owns everything one game needs: the board, the active and next
// pieces, score and timers. It is driven by Step, once per platform tick,
// and is not safe for concurrent use.
type Session struct {
	cfg         config.TetrisConfig
	progression *config.Progression
	rng         *rand.Rand
	board       *Board

	current Piece
	next    Piece
	state   State

	fallTimer    time.Duration
	fallInterval time.Duration

	score     int
	lines     int
	level     int
	pieces    int
	tick      uint64
	highScore int
}

// NewSession creates a session and spawns its first piece.
func NewSession(cfg config.TetrisConfig, seed int64) *Session {
	s := &Session{
		cfg:         cfg,
		progression: config.NewProgression(cfg),
		board:       NewBoard(),
	}
	s.Reset(seed)
	return s
}

// Reset starts a new game on an empty board.
func (s *Session) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.board.Reset()
	s.score = 0
	s.lines = 0
	s.pieces = 0
	s.tick = 0
	s.level = s.progression.Level(0)
	s.fallInterval = s.progression.FallInterval(s.level)
	s.fallTimer = 0

	s.next = s.randomPiece()
	s.state = StateSpawning
	s.spawn()
}

func (s *Session) randomPiece() Piece {
	return NewPiece(Shapes[s.rng.Intn(len(Shapes))])
}

// spawn promotes the queued piece and draws a fresh one behind it.
func (s *Session) spawn() {
	s.current = s.next
	s.next = s.randomPiece()
	s.state = StateFalling
}

// Step advances the session by one tick: gravity, then inputs in arrival
// order, then locking.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.state == StateGameOver || s.state == StateQuit {
		return core.StepResult{State: s.State()}
	}
	s.tick++

	// Time spent paused never reaches the fall timer.
	if s.state != StatePaused {
		s.fall(in.Elapsed)
	}

	for _, a := range in.Actions {
		s.handle(a)
		if s.state == StateQuit {
			return core.StepResult{State: s.State()}
		}
	}

	if s.state == StatePaused {
		return core.StepResult{State: s.State()}
	}

	result := core.StepResult{}
	if s.state == StateLocking {
		// A move after gravity may have left room to fall again.
		if s.board.DropDistance(s.current) > 0 {
			s.state = StateFalling
		} else {
			result.Locked = true
			result.Cleared = s.lock()
		}
	}
	result.State = s.State()
	return result
}

// handle applies one player action. Moves that do not fit are reverted.
func (s *Session) handle(a core.Action) {
	if s.state == StatePaused {
		switch a {
		case core.ActionPause:
			s.state = StateFalling
		case core.ActionQuit:
			s.state = StateQuit
		}
		return
	}

	switch a {
	case core.ActionLeft:
		s.try(func(p *Piece) { p.MoveBy(-1, 0) })
	case core.ActionRight:
		s.try(func(p *Piece) { p.MoveBy(1, 0) })
	case core.ActionDown:
		s.try(func(p *Piece) { p.MoveBy(0, 1) })
	case core.ActionRotate:
		s.try(func(p *Piece) { p.Rotate(1) })
	case core.ActionHardDrop:
		s.current.MoveBy(0, s.board.DropDistance(s.current))
	case core.ActionPause:
		s.state = StatePaused
	case core.ActionQuit:
		s.state = StateQuit
	}
}

// try applies move to a copy of the active piece and keeps it if it fits.
func (s *Session) try(move func(*Piece)) bool {
	p := s.current
	move(&p)
	if !s.board.Fits(p) {
		return false
	}
	s.current = p
	return true
}

// fall advances the gravity timer and moves the piece down when it
// expires. A piece that cannot move down starts locking.
func (s *Session) fall(elapsed time.Duration) {
	s.fallTimer += elapsed
	if s.fallTimer < s.fallInterval {
		return
	}
	s.fallTimer = 0
	if !s.try(func(p *Piece) { p.MoveBy(0, 1) }) {
		s.state = StateLocking
	}
}

// lock commits the active piece, spawns the next one, clears rows and
// updates scoring. Returns the number of rows cleared.
func (s *Session) lock() int {
	s.board.Lock(s.current)
	s.pieces++
	s.state = StateSpawning
	s.spawn()

	cleared := s.board.ClearFullRows()
	if cleared > 0 {
		s.score += s.progression.Points(cleared)
		s.lines += cleared
		s.level = s.progression.Level(s.lines)
		s.fallInterval = s.progression.FallInterval(s.level)
	}

	if s.board.IsGameOver() {
		s.state = StateGameOver
	}
	return cleared
}

// State returns the status reported to the platform.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lines:    s.lines,
		Level:    s.level,
		GameOver: s.state == StateGameOver,
		Paused:   s.state == StatePaused,
		Quit:     s.state == StateQuit,
	}
}

// Phase returns the state machine's current state.
func (s *Session) Phase() State {
	return s.state
}

// Board returns the session's board.
func (s *Session) Board() *Board {
	return s.board
}

// Current returns the active piece.
func (s *Session) Current() Piece {
	return s.current
}

// Next returns the queued piece.
func (s *Session) Next() Piece {
	return s.next
}

// FallInterval returns the current time between gravity steps.
func (s *Session) FallInterval() time.Duration {
	return s.fallInterval
}

// SetHighScore sets the best score shown in the side panel.
func (s *Session) SetHighScore(score int) {
	s.highScore = score
}

// HighScore returns the larger of the stored best and the current score.
func (s *Session) HighScore() int {
	return max(s.highScore, s.score)
}

// Ghost returns the active piece moved to where a hard drop would put it.
func (s *Session) Ghost() Piece {
	g := s.current
	g.MoveBy(0, s.board.DropDistance(g))
	return g
}

// Grid returns the locked cells with the active piece drawn on top.
func (s *Session) Grid() Grid {
	g := s.board.Grid()
	if s.state == StateGameOver {
		return g
	}
	color := s.current.Color()
	for _, c := range s.current.Cells() {
		if c.Y > -1 && c.Y < Rows && c.X >= 0 && c.X < Cols {
			g[c.Y][c.X] = color
		}
	}
	return g
}
