package game

// Move attempts to shift the active piece one cell in the given direction.
// Movement is blocked by the board edges and by any occupied cell; a blocked
// move leaves the state unchanged. Returns whether the piece moved.
func (s *GameState) Move(dir Direction) bool {
	newPos := s.pos
	switch dir {
	case DirLeft:
		newPos.X--
	case DirRight:
		newPos.X++
	case DirDown:
		newPos.Y++
	default:
		return false
	}

	if !s.fits(newPos) {
		return false
	}
	s.pos = newPos
	return true
}

// Rotate turns the active piece 90 degrees if the rotated shape fits at the
// current position. Otherwise the piece keeps its orientation.
func (s *GameState) Rotate() bool {
	candidate := s.active.Rotated()
	if !s.board.Fits(candidate, s.pos) {
		return false
	}
	s.active.Shape = candidate
	return true
}

// HardDrop moves the active piece down until it rests on something.
// Returns the number of rows it fell.
func (s *GameState) HardDrop() int {
	rows := 0
	for s.CanDescend() {
		s.pos.Y++
		rows++
	}
	return rows
}
