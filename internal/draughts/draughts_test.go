package draughts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 12, b.Count(White))
	assert.Equal(t, 12, b.Count(Black))

	// All men start on dark squares, Black on top, White at the bottom.
	for row := int8(0); row < Size; row++ {
		for col := int8(0); col < Size; col++ {
			piece := b[row][col]
			if piece.IsEmpty() {
				continue
			}
			assert.Equal(t, int8(1), (row+col)%2, "piece on light square %v", Pos{row, col})
			if row < 3 {
				assert.Equal(t, BlackMan, piece)
			} else {
				assert.Equal(t, WhiteMan, piece)
			}
		}
	}
}

func TestPiece(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.True(t, WhiteKing.IsKing())
	assert.True(t, BlackKing.IsKing())
	assert.False(t, WhiteMan.IsKing())

	assert.True(t, WhiteMan.BelongsTo(White))
	assert.True(t, WhiteKing.BelongsTo(White))
	assert.False(t, WhiteMan.BelongsTo(Black))
	assert.True(t, BlackMan.BelongsTo(Black))
	assert.False(t, Empty.BelongsTo(White))
	assert.False(t, Empty.BelongsTo(Black))
}

func TestColor(t *testing.T) {
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, WhiteMan, White.Man())
	assert.Equal(t, BlackKing, Black.King())
}

func TestPosInBounds(t *testing.T) {
	assert.True(t, Pos{0, 0}.InBounds())
	assert.True(t, Pos{7, 7}.InBounds())
	assert.False(t, Pos{-1, 0}.InBounds())
	assert.False(t, Pos{0, 8}.InBounds())
	assert.False(t, Pos{8, 3}.InBounds())
}

func TestMoveIsJump(t *testing.T) {
	assert.False(t, Move{Pos{5, 0}, Pos{4, 1}}.IsJump())
	jump := Move{Pos{4, 3}, Pos{2, 1}}
	assert.True(t, jump.IsJump())
	assert.Equal(t, Pos{3, 2}, jump.Captured())
}
