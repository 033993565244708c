package astar

import (
	"github.com/pkg/errors"
	"github.com/schweizerwilsemann/searchlab/internal/graph"
	"github.com/schweizerwilsemann/searchlab/internal/parameters"
	"github.com/schweizerwilsemann/searchlab/internal/searchers"
)

func init() {
	searchers.Register("astar", newFromParams)
}

func newFromParams(params parameters.Params, heuristic graph.HeuristicFunc, cost graph.CostFunc) (searchers.Searcher, error) {
	if err := params.CheckExhausted("astar"); err != nil {
		return nil, err
	}
	if cost == nil {
		return nil, errors.New("astar requires an edge-cost function")
	}
	return New(heuristic, cost), nil
}
