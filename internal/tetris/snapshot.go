package tetris

// Snapshot captures the session state for determinism tests and debug
// output.
type Snapshot struct {
	Tick     uint64
	State    State
	Score    int
	Lines    int
	Level    int
	Pieces   int // Pieces locked so far
	Locked   int // Locked cells on the board
	Current  Shape
	X, Y     int
	Rotation int
	Next     Shape
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		State:    s.state,
		Score:    s.score,
		Lines:    s.lines,
		Level:    s.level,
		Pieces:   s.pieces,
		Locked:   s.board.Len(),
		Current:  s.current.Shape,
		X:        s.current.X,
		Y:        s.current.Y,
		Rotation: s.current.Rotation,
		Next:     s.next.Shape,
	}
}
