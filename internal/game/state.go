package game

// GameState is the board, the falling piece and where that piece is.
// It is not safe for concurrent use; the Engine serializes access to it.
type GameState struct {
	board  *Board
	pos    Position
	active Piece
	spawn  Position
	rng    RandomSource
}

// NewGameState creates an empty board with a random piece at the spawn position.
func NewGameState(config Config, rng RandomSource) *GameState {
	return &GameState{
		board:  NewBoard(config.Rows, config.Cols),
		pos:    config.Spawn,
		active: RandomPiece(rng),
		spawn:  config.Spawn,
		rng:    rng,
	}
}

// Board returns the board. Callers must not mutate it while the state is in use.
func (s *GameState) Board() *Board { return s.board }

// Position returns the anchor of the active piece.
func (s *GameState) Position() Position { return s.pos }

// Active returns the falling piece.
func (s *GameState) Active() Piece { return s.active }

// fits reports whether the active piece fits at pos.
func (s *GameState) fits(pos Position) bool {
	return s.board.Fits(s.active.Shape, pos)
}

// stamp writes the active piece's cells with the given occupancy if the
// current placement fits. Returns whether anything was written.
func (s *GameState) stamp(occ Occupancy) bool {
	if !s.fits(s.pos) {
		return false
	}
	for _, o := range s.active.Shape {
		s.board.SetCell(s.pos.Y+o.DY, s.pos.X+o.DX, s.active.Color, occ)
	}
	return true
}

// CanDescend reports whether the active piece can move down one row.
func (s *GameState) CanDescend() bool {
	return s.fits(Position{X: s.pos.X, Y: s.pos.Y + 1})
}

// Lock persists the active piece and spawns a new random one at the spawn
// position. If the current placement does not fit nothing is written, but the
// new piece is still spawned. Returns whether cells were persisted.
func (s *GameState) Lock() bool {
	locked := s.stamp(Persisted)
	s.pos = s.spawn
	s.active = RandomPiece(s.rng)
	return locked
}

// SpawnBlocked reports whether the active piece does not fit where it is.
// Right after Lock this means the board is full.
func (s *GameState) SpawnBlocked() bool {
	return !s.fits(s.pos)
}

// PaintActive draws the active piece as Transient cells for rendering.
func (s *GameState) PaintActive() {
	s.stamp(Transient)
}

// TickHousekeeping clears last frame's transient paint, then removes full rows.
// Returns the number of rows removed.
func (s *GameState) TickHousekeeping() int {
	s.board.ClearTransient()
	return s.board.CompactRows()
}
