package game

// RandomSource picks piece kinds. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Piece is a tetromino in its current orientation.
type Piece struct {
	Kind  Kind  `json:"kind"`
	Shape Shape `json:"shape"`
	Color Color `json:"color"`
}

// NewPiece returns a piece of the given kind in its base orientation.
func NewPiece(kind Kind) Piece {
	return Piece{
		Kind:  kind,
		Shape: kind.Shape(),
		Color: kind.Color(),
	}
}

// RandomPiece draws a kind uniformly from rng.
func RandomPiece(rng RandomSource) Piece {
	return NewPiece(Kind(rng.IntN(int(kindCount))))
}

// Rotated returns the shape turned 90 degrees about the pivot: (x, y) -> (-y, x).
//
// The same transform applies to every kind, so the O and I pieces visibly
// shift as they turn. There are no wall kicks.
func (s Shape) Rotated() Shape {
	var out Shape
	for i, o := range s {
		out[i] = Offset{DX: -o.DY, DY: o.DX}
	}
	return out
}

// Rotated returns the candidate shape after one rotation. It does not check fit.
func (p Piece) Rotated() Shape {
	return p.Shape.Rotated()
}

// Rotate commits the rotation unconditionally.
func (p *Piece) Rotate() {
	p.Shape = p.Shape.Rotated()
}
