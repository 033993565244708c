package minimax

import (
	"github.com/chewxy/math32"
	"github.com/schweizerwilsemann/searchlab/internal/draughts"
)

// Node is one position visited by the tracing search. The tree rooted at the searched
// position is a faithful record of exactly what alpha-beta visited: where a cutoff
// occurred the node has fewer children than the position has moves. Nodes are owned by
// the call that created them and never mutated after the search returns.
type Node struct {
	Board draughts.Board

	// Children in the order they were explored.
	Children []*Node

	// Score propagated bottom-up: the leaf evaluation, the no-move sentinel, or the
	// max/min over the explored children.
	Score float32

	// Move that led from the parent to this node, nil at the root.
	Move *draughts.Move

	// Depth remaining at this node.
	Depth int

	// Maximizing reports whether this node picks the maximum over its children.
	Maximizing bool

	// Player is the side to move at this node.
	Player draughts.Color
}

// SearchWithTree is Search plus a trace: it returns the best move for player and the
// tree of every position the alpha-beta recursion actually visited.
func (s *Searcher) SearchWithTree(b draughts.Board, player draughts.Color) (move *draughts.Move, tree *Node) {
	s.stats = Stats{}
	result, tree := s.tracedMinimax(b, s.maxDepth, player, player.Opponent(),
		math32.Inf(-1), math32.Inf(1), true, nil)
	return result.Move, tree
}

// tracedMinimax mirrors Minimax exactly, additionally building the Node for this
// position. Each recursive call returns its fully-built subtree, which the parent then
// attaches -- no node is shared across recursion frames.
func (s *Searcher) tracedMinimax(b draughts.Board, depth int, player, opponent draughts.Color,
	alpha, beta float32, maximizing bool, via *draughts.Move) (Result, *Node) {
	mover := player
	if !maximizing {
		mover = opponent
	}
	node := &Node{
		Board:      b,
		Move:       via,
		Depth:      depth,
		Maximizing: maximizing,
		Player:     mover,
	}

	if depth == 0 {
		s.stats.leafEvals++
		node.Score = s.scorer.Score(b, player, opponent)
		return Result{Score: node.Score}, node
	}

	moves := b.ValidMoves(mover)
	if len(moves) == 0 {
		if maximizing {
			node.Score = LossScore
		} else {
			node.Score = WinScore
		}
		return Result{Score: node.Score}, node
	}

	if maximizing {
		best := Result{Score: math32.Inf(-1)}
		for _, move := range moves {
			s.stats.nodes++
			child, childNode := s.tracedMinimax(b.Apply(move), depth-1, player, opponent,
				alpha, beta, false, &move)
			node.Children = append(node.Children, childNode)
			if child.Score > best.Score {
				best = Result{Score: child.Score, Move: &move}
			}
			alpha = math32.Max(alpha, best.Score)
			if beta <= alpha {
				s.stats.prunes++
				break
			}
		}
		node.Score = best.Score
		return best, node
	}

	best := Result{Score: math32.Inf(1)}
	for _, move := range moves {
		s.stats.nodes++
		child, childNode := s.tracedMinimax(b.Apply(move), depth-1, player, opponent,
			alpha, beta, true, &move)
		node.Children = append(node.Children, childNode)
		if child.Score < best.Score {
			best = Result{Score: child.Score, Move: &move}
		}
		beta = math32.Min(beta, best.Score)
		if beta <= alpha {
			s.stats.prunes++
			break
		}
	}
	node.Score = best.Score
	return best, node
}
