// Package all registers every frontier search engine: blank-import it from front-ends
// that select engines by configuration string.
package all

import (
	_ "github.com/schweizerwilsemann/searchlab/internal/searchers/astar"
	_ "github.com/schweizerwilsemann/searchlab/internal/searchers/bestfirst"
	_ "github.com/schweizerwilsemann/searchlab/internal/searchers/branchandbound"
	_ "github.com/schweizerwilsemann/searchlab/internal/searchers/hillclimbing"
)
