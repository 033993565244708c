// Package draughts holds the 8x8 board model for the adversarial search: piece states,
// move generation with mandatory captures, and board transitions that always return a
// fresh copy of the position.
package draughts

import "fmt"

// Size of the board, rows and columns.
const Size = 8

// Piece is the state of one board cell.
type Piece uint8

const (
	Empty Piece = iota
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing
	lastPiece
)

var pieceNames = [lastPiece]string{"Empty", "WhiteMan", "WhiteKing", "BlackMan", "BlackKing"}

// PieceLetters are one-character labels for each piece state, used by board printers.
var PieceLetters = [lastPiece]string{".", "w", "W", "b", "B"}

// String returns the long piece name.
func (p Piece) String() string {
	return pieceNames[p]
}

// IsEmpty returns whether the cell holds no piece.
func (p Piece) IsEmpty() bool { return p == Empty }

// IsKing returns whether the piece is a promoted king.
func (p Piece) IsKing() bool { return p == WhiteKing || p == BlackKing }

// BelongsTo returns whether the piece is owned by the given color.
func (p Piece) BelongsTo(c Color) bool {
	if c == White {
		return p == WhiteMan || p == WhiteKing
	}
	return p == BlackMan || p == BlackKing
}

// Color of a side. Black's back rank is row 0, White's back rank is row Size-1,
// so White men advance toward row 0 and Black men toward row Size-1.
type Color uint8

const (
	White Color = iota
	Black
)

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return 1 - c
}

// Man returns the unpromoted piece of this color.
func (c Color) Man() Piece {
	if c == White {
		return WhiteMan
	}
	return BlackMan
}

// King returns the promoted piece of this color.
func (c Color) King() Piece {
	if c == White {
		return WhiteKing
	}
	return BlackKing
}

// Pos is a board coordinate.
type Pos struct {
	Row, Col int8
}

// InBounds returns whether the position is on the board.
func (pos Pos) InBounds() bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

// Move relocates the piece at From to To. A move spanning two rows is a jump that
// captures the piece at the midpoint.
type Move struct {
	From, To Pos
}

// IsJump returns whether the move is a two-step capture.
func (m Move) IsJump() bool {
	delta := m.To.Row - m.From.Row
	return delta == 2 || delta == -2
}

// Captured returns the midpoint position a jump captures. Only meaningful when IsJump.
func (m Move) Captured() Pos {
	return Pos{Row: (m.From.Row + m.To.Row) / 2, Col: (m.From.Col + m.To.Col) / 2}
}

func (m Move) String() string {
	if m.IsJump() {
		return fmt.Sprintf("%s x %s", m.From, m.To)
	}
	return fmt.Sprintf("%s -> %s", m.From, m.To)
}

// Board is the full position. It is a value type: assigning or passing it copies the
// whole grid, so transitions like Apply never alias or mutate the position they start
// from.
type Board [Size][Size]Piece

// NewBoard returns the standard starting position: twelve men per side on the dark
// squares, Black on rows 0-2 and White on rows 5-7.
func NewBoard() Board {
	var b Board
	for row := int8(0); row < 3; row++ {
		for col := int8(0); col < Size; col++ {
			if (row+col)%2 == 1 {
				b[row][col] = BlackMan
			}
		}
	}
	for row := int8(Size - 3); row < Size; row++ {
		for col := int8(0); col < Size; col++ {
			if (row+col)%2 == 1 {
				b[row][col] = WhiteMan
			}
		}
	}
	return b
}

// At returns the piece at the given position.
func (b Board) At(pos Pos) Piece {
	return b[pos.Row][pos.Col]
}

// Count returns how many pieces of the given color are on the board.
func (b Board) Count(c Color) (count int) {
	for row := range b {
		for col := range b[row] {
			if b[row][col].BelongsTo(c) {
				count++
			}
		}
	}
	return
}
