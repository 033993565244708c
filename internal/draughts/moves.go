package draughts

// directions a piece may move in, in fixed order so move generation (and therefore
// search traces) is reproducible. Men only advance toward the opponent's back rank,
// kings move on all four diagonals.
func (p Piece) directions() []Pos {
	switch p {
	case WhiteMan:
		return []Pos{{-1, -1}, {-1, 1}}
	case BlackMan:
		return []Pos{{1, -1}, {1, 1}}
	case WhiteKing, BlackKing:
		return []Pos{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}
	return nil
}

// Apply returns the board after playing the move: the piece is relocated, a jumped
// piece is removed from the midpoint, and a man reaching the far rank is promoted.
//
// Apply does not validate legality -- that is the move generator's job. The receiver
// is left untouched, the returned board is an independent copy.
func (b Board) Apply(m Move) Board {
	piece := b[m.From.Row][m.From.Col]
	b[m.From.Row][m.From.Col] = Empty
	if m.IsJump() {
		captured := m.Captured()
		b[captured.Row][captured.Col] = Empty
	}
	if piece == WhiteMan && m.To.Row == 0 {
		piece = WhiteKing
	} else if piece == BlackMan && m.To.Row == Size-1 {
		piece = BlackKing
	}
	b[m.To.Row][m.To.Col] = piece
	return b
}

// ValidMoves returns every legal move for the given color. Captures are mandatory:
// whenever at least one capture exists only captures are returned, otherwise all
// single-step diagonal moves into empty squares.
//
// Moves are generated in board-scan order (row-major, then direction order), which is
// the move ordering the adversarial search sees.
func (b Board) ValidMoves(c Color) []Move {
	if captures := b.Captures(c); len(captures) > 0 {
		return captures
	}
	return b.RegularMoves(c)
}

// Captures returns all capture moves for the given color: an adjacent opposing piece
// with an empty landing square two steps beyond in the same direction.
func (b Board) Captures(c Color) (moves []Move) {
	for row := int8(0); row < Size; row++ {
		for col := int8(0); col < Size; col++ {
			piece := b[row][col]
			if !piece.BelongsTo(c) {
				continue
			}
			from := Pos{row, col}
			for _, dir := range piece.directions() {
				over := Pos{row + dir.Row, col + dir.Col}
				landing := Pos{row + 2*dir.Row, col + 2*dir.Col}
				if !landing.InBounds() {
					continue
				}
				if b.At(over).BelongsTo(c.Opponent()) && b.At(landing).IsEmpty() {
					moves = append(moves, Move{From: from, To: landing})
				}
			}
		}
	}
	return
}

// RegularMoves returns all single-step diagonal moves into empty squares for the
// given color.
func (b Board) RegularMoves(c Color) (moves []Move) {
	for row := int8(0); row < Size; row++ {
		for col := int8(0); col < Size; col++ {
			piece := b[row][col]
			if !piece.BelongsTo(c) {
				continue
			}
			from := Pos{row, col}
			for _, dir := range piece.directions() {
				to := Pos{row + dir.Row, col + dir.Col}
				if to.InBounds() && b.At(to).IsEmpty() {
					moves = append(moves, Move{From: from, To: to})
				}
			}
		}
	}
	return
}
