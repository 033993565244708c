package searchers

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/schweizerwilsemann/searchlab/internal/generics"
	"github.com/schweizerwilsemann/searchlab/internal/graph"
	"github.com/schweizerwilsemann/searchlab/internal/parameters"
)

// Builder creates a Searcher from the user's parameters. The cost function may be nil
// for engines that don't use edge costs.
type Builder func(params parameters.Params, heuristic graph.HeuristicFunc, cost graph.CostFunc) (Searcher, error)

type builderRegistration struct {
	Builder
	Name string
}

// Registered engine builders.
var keywordToBuilders = make(map[string]builderRegistration)

// Register an engine builder under the given name, so front-ends can select it by
// configuration string. Engines register themselves in their package init.
func Register(name string, builder Builder) {
	keywordToBuilders[name] = builderRegistration{Name: name, Builder: builder}
}

// Names returns the sorted list of registered engine names.
func Names() []string {
	return slices.Collect(generics.SortedKeys(keywordToBuilders))
}

// New creates a searcher given a configuration string: the engine name optionally
// followed by a colon (":") and a comma-separated list of `key=value` parameters,
// e.g. "astar" or "branchandbound:trace".
func New(config string, heuristic graph.HeuristicFunc, cost graph.CostFunc) (Searcher, error) {
	name := config
	paramsConfig := ""
	if split := strings.Index(config, ":"); split != -1 {
		name = config[:split]
		paramsConfig = config[split+1:]
	}
	registration, ok := keywordToBuilders[name]
	if !ok {
		return nil, errors.Errorf("unknown search engine %q, registered engines: %s",
			name, strings.Join(Names(), ", "))
	}

	params := parameters.FromConfigString(paramsConfig)
	searcher, err := registration.Builder(params, heuristic, cost)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create search engine %q", name)
	}
	return searcher, nil
}
