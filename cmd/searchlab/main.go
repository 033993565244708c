// Command searchlab demos the decision-search library: it runs the frontier search
// engines over a built-in road-map graph and prints their traces, or watches two
// minimax players fight a draughts match.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/schweizerwilsemann/searchlab/internal/draughts"
	"github.com/schweizerwilsemann/searchlab/internal/eval"
	"github.com/schweizerwilsemann/searchlab/internal/graph"
	"github.com/schweizerwilsemann/searchlab/internal/minimax"
	"github.com/schweizerwilsemann/searchlab/internal/searchers"
	_ "github.com/schweizerwilsemann/searchlab/internal/searchers/all"
	"github.com/schweizerwilsemann/searchlab/internal/ui/cli"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	flagMode = flag.String("mode", "graph",
		"What to demo: \"graph\" runs the frontier engines on the built-in map, \"match\" plays minimax vs minimax draughts.")
	flagEngines = flag.String("engines", "",
		"Comma-separated engine configs to run in graph mode, e.g. \"astar,branchandbound\". Default is all registered engines.")
	flagStart    = flag.String("start", "Arad", "Start node in graph mode.")
	flagGoal     = flag.String("goal", "Bucharest", "Goal node in graph mode.")
	flagDepth    = flag.Int("depth", minimax.DefaultMaxDepth, "Search depth (plies) for each minimax player in match mode.")
	flagMaxMoves = flag.Int("max_moves", 200, "Max moves in match mode before the match is called off.")
	flagColor    = flag.Bool("color", cli.AutoColor(), "Colorized output.")
)

// demoGraph is a fragment of the classic Romania road map: directed both ways, edge
// costs are road distances and the heuristic is the straight-line distance to Bucharest.
var (
	demoGraph = graph.Graph{
		"Arad":      {"Zerind", "Sibiu", "Timisoara"},
		"Zerind":    {"Arad", "Oradea"},
		"Oradea":    {"Zerind", "Sibiu"},
		"Timisoara": {"Arad", "Lugoj"},
		"Lugoj":     {"Timisoara", "Mehadia"},
		"Mehadia":   {"Lugoj", "Drobeta"},
		"Drobeta":   {"Mehadia", "Craiova"},
		"Craiova":   {"Drobeta", "Pitesti", "Rimnicu"},
		"Sibiu":     {"Arad", "Oradea", "Fagaras", "Rimnicu"},
		"Rimnicu":   {"Sibiu", "Craiova", "Pitesti"},
		"Fagaras":   {"Sibiu", "Bucharest"},
		"Pitesti":   {"Rimnicu", "Craiova", "Bucharest"},
		"Bucharest": {"Fagaras", "Pitesti"},
	}

	demoDistances = map[string]map[string]float32{
		"Arad":      {"Zerind": 75, "Sibiu": 140, "Timisoara": 118},
		"Zerind":    {"Arad": 75, "Oradea": 71},
		"Oradea":    {"Zerind": 71, "Sibiu": 151},
		"Timisoara": {"Arad": 118, "Lugoj": 111},
		"Lugoj":     {"Timisoara": 111, "Mehadia": 70},
		"Mehadia":   {"Lugoj": 70, "Drobeta": 75},
		"Drobeta":   {"Mehadia": 75, "Craiova": 120},
		"Craiova":   {"Drobeta": 120, "Pitesti": 138, "Rimnicu": 146},
		"Sibiu":     {"Arad": 140, "Oradea": 151, "Fagaras": 99, "Rimnicu": 80},
		"Rimnicu":   {"Sibiu": 80, "Craiova": 146, "Pitesti": 97},
		"Fagaras":   {"Sibiu": 99, "Bucharest": 211},
		"Pitesti":   {"Rimnicu": 97, "Craiova": 138, "Bucharest": 101},
		"Bucharest": {"Fagaras": 211, "Pitesti": 101},
	}

	demoToBucharest = map[string]float32{
		"Arad": 366, "Zerind": 374, "Oradea": 380, "Timisoara": 329,
		"Lugoj": 244, "Mehadia": 241, "Drobeta": 242, "Craiova": 160,
		"Sibiu": 253, "Rimnicu": 193, "Fagaras": 176, "Pitesti": 100,
		"Bucharest": 0,
	}
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	ui := cli.New(*flagColor)
	switch *flagMode {
	case "graph":
		runGraphDemo(ui)
	case "match":
		runMatchDemo(ui)
	default:
		exceptions.Panicf("invalid --mode=%q, only valid values are \"graph\" and \"match\"", *flagMode)
	}
}

func runGraphDemo(ui *cli.UI) {
	heuristic := func(node string) float32 { return demoToBucharest[node] }
	cost := func(u, v string) float32 { return demoDistances[u][v] }

	configs := searchers.Names()
	if *flagEngines != "" {
		configs = splitConfigs(*flagEngines)
	}

	// Each engine owns its inputs and result, so they can run concurrently.
	results := make([]*searchers.Result, len(configs))
	var group errgroup.Group
	for ii, config := range configs {
		engine := must.M1(searchers.New(config, heuristic, cost))
		group.Go(func() error {
			results[ii] = engine.Search(demoGraph, *flagStart, *flagGoal)
			return nil
		})
	}
	must.M(group.Wait())

	for ii, config := range configs {
		ui.PrintTrace(config, results[ii])
		fmt.Println()
	}
}

func splitConfigs(engines string) []string {
	var configs []string
	for _, config := range strings.Split(engines, ",") {
		if config = strings.TrimSpace(config); config != "" {
			configs = append(configs, config)
		}
	}
	return configs
}

func runMatchDemo(ui *cli.UI) {
	if *flagDepth <= 0 {
		klog.Fatalf("Invalid --depth=%d", *flagDepth)
	}
	player := minimax.New(eval.Static{}).WithMaxDepth(*flagDepth)

	board := draughts.NewBoard()
	toMove := draughts.White
	ui.PrintBoard(board)
	for moveNumber := 1; moveNumber <= *flagMaxMoves; moveNumber++ {
		move, score := player.Search(board, toMove)
		ui.PrintMove(toMove, move, score)
		if move == nil {
			fmt.Printf("%s wins after %d moves.\n", toMove.Opponent(), moveNumber-1)
			return
		}
		board = board.Apply(*move)
		ui.PrintBoard(board)
		toMove = toMove.Opponent()
	}
	fmt.Printf("No winner after %d moves, calling it off.\n", *flagMaxMoves)
}
