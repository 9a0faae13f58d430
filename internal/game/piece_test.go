package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource returns the given kinds in order, cycling.
type seqSource struct {
	kinds []Kind
	next  int
}

func newSeqSource(kinds ...Kind) *seqSource {
	return &seqSource{kinds: kinds}
}

func (s *seqSource) IntN(n int) int {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return int(k) % n
}

func TestCatalog(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 7)

	colors := make(map[Color]Kind)
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			shape := k.Shape()
			assert.Len(t, shape, 4)
			assert.NotEqual(t, Background, k.Color())

			seen := make(map[Offset]bool)
			for _, o := range shape {
				assert.False(t, seen[o], "duplicate offset %v", o)
				seen[o] = true
			}
		})
		colors[k.Color()] = k
	}
	assert.Len(t, colors, 7, "every kind should have its own color")
}

func TestCatalogValues(t *testing.T) {
	assert.Equal(t, Shape{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, KindI.Shape())
	assert.Equal(t, SkyBlue, KindI.Color())
	assert.Equal(t, Shape{{0, -1}, {-1, 0}, {0, 0}, {1, 0}}, KindT.Shape())
	assert.Equal(t, Purple, KindT.Color())
	assert.Equal(t, Shape{{-1, -1}, {0, -1}, {0, 0}, {1, 0}}, KindZ.Shape())
	assert.Equal(t, Red, KindZ.Color())
}

func TestUnknownKindFallsBackToI(t *testing.T) {
	assert.Equal(t, KindI.Shape(), Kind(42).Shape())
	assert.Equal(t, KindI.Color(), Kind(-1).Color())
	assert.Equal(t, "?", Kind(42).String())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			p := NewPiece(k)
			for range 4 {
				p.Rotate()
			}
			assert.Equal(t, k.Shape(), p.Shape)
		})
	}
}

func TestRotatedTransform(t *testing.T) {
	p := NewPiece(KindI)

	rotated := p.Rotated()
	assert.Equal(t, Shape{{0, -1}, {0, 0}, {0, 1}, {0, 2}}, rotated)

	// Rotated only computes the candidate
	assert.Equal(t, KindI.Shape(), p.Shape)

	p.Rotate()
	assert.Equal(t, rotated, p.Shape)
	assert.Equal(t, KindI, p.Kind)
	assert.Equal(t, SkyBlue, p.Color)
}

func TestRandomPieceUsesSource(t *testing.T) {
	src := newSeqSource(KindZ, KindO, KindL)

	assert.Equal(t, KindZ, RandomPiece(src).Kind)
	assert.Equal(t, KindO, RandomPiece(src).Kind)
	assert.Equal(t, KindL, RandomPiece(src).Kind)
	assert.Equal(t, KindZ, RandomPiece(src).Kind)
}

func TestRandomPieceCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	counts := make(map[Kind]int)
	for range 7000 {
		counts[RandomPiece(rng).Kind]++
	}

	require.Len(t, counts, 7)
	for k, n := range counts {
		assert.InDelta(t, 1000, n, 200, "kind %s drawn %d times", k, n)
	}
}
