package hillclimbing

import (
	"github.com/schweizerwilsemann/searchlab/internal/graph"
	"github.com/schweizerwilsemann/searchlab/internal/parameters"
	"github.com/schweizerwilsemann/searchlab/internal/searchers"
)

func init() {
	searchers.Register("hillclimbing", newFromParams)
}

func newFromParams(params parameters.Params, heuristic graph.HeuristicFunc, _ graph.CostFunc) (searchers.Searcher, error) {
	if err := params.CheckExhausted("hillclimbing"); err != nil {
		return nil, err
	}
	return New(heuristic), nil
}
