// Package cli implements a command-line printer for boards and search traces.
//
// It consumes the core's result objects read-only: nothing here feeds back into the
// search engines.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schweizerwilsemann/searchlab/internal/draughts"
	"github.com/schweizerwilsemann/searchlab/internal/generics"
	"github.com/schweizerwilsemann/searchlab/internal/searchers"
	"golang.org/x/term"
)

// UI prints boards and traces to stdout.
type UI struct {
	color bool

	darkSquare  lipgloss.Style
	lightSquare lipgloss.Style
	whitePiece  lipgloss.Style
	blackPiece  lipgloss.Style
	pathNode    lipgloss.Style
	header      lipgloss.Style
}

// New returns a UI. With color disabled all styling is skipped, which keeps the output
// usable in pipes and logs.
func New(color bool) *UI {
	ui := &UI{color: color}
	if color {
		ui.darkSquare = lipgloss.NewStyle().Background(lipgloss.Color("94"))
		ui.lightSquare = lipgloss.NewStyle().Background(lipgloss.Color("180"))
		ui.whitePiece = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
		ui.blackPiece = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true)
		ui.pathNode = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
		ui.header = lipgloss.NewStyle().Bold(true).Underline(true)
	}
	return ui
}

// AutoColor reports whether stdout is a terminal, the usual default for color output.
func AutoColor() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func printCentered(block string) {
	terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || terminalWidth <= 0 {
		fmt.Print(block)
		if !strings.HasSuffix(block, "\n") {
			fmt.Println()
		}
		return
	}
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > blockWidth {
			blockWidth = w
		}
	}
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// PrintBoard prints the 8x8 board, row 0 (Black's back rank) on top.
func (ui *UI) PrintBoard(b draughts.Board) {
	var sb strings.Builder
	sb.WriteString("    0  1  2  3  4  5  6  7\n")
	for row := int8(0); row < draughts.Size; row++ {
		fmt.Fprintf(&sb, " %d ", row)
		for col := int8(0); col < draughts.Size; col++ {
			piece := b[row][col]
			cell := " " + draughts.PieceLetters[piece] + " "
			if !ui.color {
				sb.WriteString(cell)
				continue
			}
			square := ui.lightSquare
			if (row+col)%2 == 1 {
				square = ui.darkSquare
			}
			if piece.BelongsTo(draughts.White) {
				cell = " " + ui.whitePiece.Inherit(square).Render(draughts.PieceLetters[piece]) + " "
			} else if piece.BelongsTo(draughts.Black) {
				cell = " " + ui.blackPiece.Inherit(square).Render(draughts.PieceLetters[piece]) + " "
			}
			sb.WriteString(square.Render(cell))
		}
		sb.WriteString("\n")
	}
	printCentered(sb.String())
}

// PrintMove prints one played move with its search score.
func (ui *UI) PrintMove(c draughts.Color, move *draughts.Move, score float32) {
	if move == nil {
		fmt.Printf("%s has no legal moves\n", c)
		return
	}
	fmt.Printf("%s plays %s (score=%.2f)\n", c, move, score)
}

// PrintTrace prints the full step trace of one frontier search run. Nodes on the
// returned path are highlighted in the frontier listings.
func (ui *UI) PrintTrace(name string, result *searchers.Result) {
	title := fmt.Sprintf("%s: success=%v, path=%v (%d steps)",
		name, result.Success, result.Path, len(result.Steps))
	if ui.color {
		title = ui.header.Render(title)
	}
	fmt.Println(title)

	onPath := generics.SetWith(result.Path...)
	for _, step := range result.Steps {
		fmt.Printf("  %3d. %-55s frontier=[%s]\n",
			step.Num, step.Description, ui.renderFrontier(step.Frontier, onPath))
		if step.GScore != nil {
			fmt.Printf("       %s\n", renderScores(step.GScore, step.FScore))
		}
	}
}

func (ui *UI) renderFrontier(frontier []string, onPath generics.Set[string]) string {
	parts := generics.SliceMap(frontier, func(node string) string {
		if ui.color && onPath.Has(node) {
			return ui.pathNode.Render(node)
		}
		return node
	})
	return strings.Join(parts, " ")
}

func renderScores(gScore, fScore map[string]float32) string {
	parts := make([]string, 0, len(gScore))
	for node := range generics.SortedKeys(gScore) {
		parts = append(parts, fmt.Sprintf("%s: g=%g f=%g", node, gScore[node], fScore[node]))
	}
	return strings.Join(parts, "  ")
}
