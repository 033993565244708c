// Package minimax implements depth-limited minimax search with alpha-beta pruning over
// the draughts board model, in a plain variant and a tree-tracing variant.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
package minimax

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gomlx/exceptions"
	"github.com/schweizerwilsemann/searchlab/internal/draughts"
	"github.com/schweizerwilsemann/searchlab/internal/eval"
	"k8s.io/klog/v2"
)

const (
	// WinScore and LossScore are the sentinels returned when the side to move has no
	// legal moves. They are deliberately coarse and can collide with accumulated
	// evaluation scores in deep searches -- callers must not read them as part of the
	// evaluator's value range.
	WinScore  float32 = 1000
	LossScore float32 = -1000

	// DefaultMaxDepth for search, in plies.
	DefaultMaxDepth = 3
)

// Result of one minimax recursion: the propagated score and the move achieving it.
// Move is nil at evaluated leaves and at no-move terminals.
type Result struct {
	Score float32
	Move  *draughts.Move
}

// Stats stores running counters collected during a search, for monitoring and
// debugging purposes.
type Stats struct {
	// nodes played during search: execution of a move followed by recursion on the
	// resulting board.
	nodes int

	// leafEvals is the number of boards handed to the scorer at depth 0.
	leafEvals int

	prunes int
}

// Searcher runs minimax with alpha-beta pruning to a fixed depth.
//
// It keeps no state between calls besides stats, and every recursion works on its own
// board copy, so distinct Searcher values are safe to use from concurrent callers.
type Searcher struct {
	maxDepth int
	scorer   eval.BoardScorer
	stats    Stats
}

// New returns a minimax Searcher using the given position scorer.
// See Searcher.WithMaxDepth for the optional configuration.
func New(scorer eval.BoardScorer) *Searcher {
	if scorer == nil {
		exceptions.Panicf("minimax.New: scorer is nil")
	}
	return &Searcher{scorer: scorer, maxDepth: DefaultMaxDepth}
}

// WithMaxDepth sets the max depth of search, in plies. The default is DefaultMaxDepth.
func (s *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	if maxDepth <= 0 {
		exceptions.Panicf("minimax: WithMaxDepth(%d), depth must be > 0", maxDepth)
	}
	s.maxDepth = maxDepth
	return s
}

func (s *Searcher) String() string {
	return fmt.Sprintf("minimax(scorer=%s, max_depth=%d)", s.scorer, s.maxDepth)
}

// Search returns the best move found for player on the given board, with its score.
// The move is nil when player has no legal moves (score is then LossScore).
func (s *Searcher) Search(b draughts.Board, player draughts.Color) (move *draughts.Move, score float32) {
	s.stats = Stats{}
	result := s.Minimax(b, s.maxDepth, player, player.Opponent(), math32.Inf(-1), math32.Inf(1), true)
	if klog.V(2).Enabled() {
		klog.Infof("minimax depth=%d: %s score=%.2f, counts=%+v", s.maxDepth, result.Move, result.Score, s.stats)
	}
	return result.Move, result.Score
}

// Minimax is the raw recursion: score the board for player looking depth plies ahead,
// with maximizing selecting whether player (true) or opponent (false) is to move.
//
// Callers normally use Search, which seeds alpha and beta with infinities; Minimax is
// exported for callers that manage the window themselves.
func (s *Searcher) Minimax(b draughts.Board, depth int, player, opponent draughts.Color,
	alpha, beta float32, maximizing bool) Result {
	if depth == 0 {
		s.stats.leafEvals++
		return Result{Score: s.scorer.Score(b, player, opponent)}
	}

	mover := player
	if !maximizing {
		mover = opponent
	}
	moves := b.ValidMoves(mover)
	if len(moves) == 0 {
		// The side to move is stuck: an immediate loss for it, encoded with the
		// coarse sentinel rather than a tuned mate score.
		if maximizing {
			return Result{Score: LossScore}
		}
		return Result{Score: WinScore}
	}

	if maximizing {
		best := Result{Score: math32.Inf(-1)}
		for _, move := range moves {
			s.stats.nodes++
			child := s.Minimax(b.Apply(move), depth-1, player, opponent, alpha, beta, false)
			if child.Score > best.Score {
				best = Result{Score: child.Score, Move: &move}
			}
			alpha = math32.Max(alpha, best.Score)
			if beta <= alpha {
				s.stats.prunes++
				break
			}
		}
		return best
	}

	best := Result{Score: math32.Inf(1)}
	for _, move := range moves {
		s.stats.nodes++
		child := s.Minimax(b.Apply(move), depth-1, player, opponent, alpha, beta, true)
		if child.Score < best.Score {
			best = Result{Score: child.Score, Move: &move}
		}
		beta = math32.Min(beta, best.Score)
		if beta <= alpha {
			s.stats.prunes++
			break
		}
	}
	return best
}
