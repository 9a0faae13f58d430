package game

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	kindCount
)

// Offset is a cell position relative to a piece's pivot.
type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Shape is the four cells of a piece in one orientation.
type Shape [4]Offset

type shapeDef struct {
	shape Shape
	color Color
}

// Base orientations, pivot at (0,0). Indexed by Kind.
var catalog = [kindCount]shapeDef{
	KindI: {Shape{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, SkyBlue},
	KindJ: {Shape{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}}, Blue},
	KindL: {Shape{{1, -1}, {-1, 0}, {0, 0}, {1, 0}}, Orange},
	KindO: {Shape{{0, -1}, {1, -1}, {0, 0}, {1, 0}}, Yellow},
	KindS: {Shape{{0, -1}, {1, -1}, {-1, 0}, {0, 0}}, Green},
	KindT: {Shape{{0, -1}, {-1, 0}, {0, 0}, {1, 0}}, Purple},
	KindZ: {Shape{{-1, -1}, {0, -1}, {0, 0}, {1, 0}}, Red},
}

// Kinds returns every piece kind in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

func (k Kind) def() shapeDef {
	if k < 0 || k >= kindCount {
		return catalog[KindI]
	}
	return catalog[k]
}

// Shape returns the base orientation of the kind.
func (k Kind) Shape() Shape { return k.def().shape }

// Color returns the display color of the kind.
func (k Kind) Color() Color { return k.def().color }

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}
