// Package eval defines the standard interface for scoring draughts positions, and the
// static evaluator used by the adversarial search.
package eval

import (
	"github.com/schweizerwilsemann/searchlab/internal/draughts"
)

// BoardScorer returns a score for a board from the point of view of player: higher is
// better for player. Implementations must be pure -- a fixed board always yields the
// same score.
type BoardScorer interface {
	Score(b draughts.Board, player, opponent draughts.Color) float32
	String() string
}

const (
	manValue  = 10
	kingValue = 15

	// edgeKingBonus rewards the player's kings sitting on any edge row or column,
	// where they cannot be jumped.
	edgeKingBonus = 2

	// mobilityWeight scales the move-count difference between the two sides.
	mobilityWeight = 0.5
)

// positionWeights is the fixed positional bonus table, center cells weighted higher.
// It is applied to the player's own pieces only.
var positionWeights = [draughts.Size][draughts.Size]float32{
	{0, 1, 1, 1, 1, 1, 1, 0},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{0, 1, 1, 1, 1, 1, 1, 0},
}

// Static is the deterministic material + position + mobility evaluator.
type Static struct{}

var _ BoardScorer = Static{}

// Score implements the BoardScorer interface. It sums, over all occupied cells, a
// signed material term, a positional bonus for the player's pieces, an edge bonus for
// the player's kings, and a mobility term over both sides' legal move counts.
func (Static) Score(b draughts.Board, player, opponent draughts.Color) float32 {
	var score float32
	for row := int8(0); row < draughts.Size; row++ {
		for col := int8(0); col < draughts.Size; col++ {
			piece := b[row][col]
			if piece.IsEmpty() {
				continue
			}
			value := float32(manValue)
			if piece.IsKing() {
				value = kingValue
			}
			if piece.BelongsTo(player) {
				score += value + positionWeights[row][col]
				if piece.IsKing() && onEdge(row, col) {
					score += edgeKingBonus
				}
			} else {
				score -= value
			}
		}
	}
	mobility := len(b.ValidMoves(player)) - len(b.ValidMoves(opponent))
	score += mobilityWeight * float32(mobility)
	return score
}

// String implements the BoardScorer interface.
func (Static) String() string { return "static" }

func onEdge(row, col int8) bool {
	return row == 0 || row == draughts.Size-1 || col == 0 || col == draughts.Size-1
}
