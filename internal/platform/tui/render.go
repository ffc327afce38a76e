package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/impactbox/internal/geom"
	"github.com/vovakirdan/impactbox/internal/sim"
)

const (
	cellEmpty = iota
	cellBlock
	cellBox
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	blockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	boxStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderWorld draws the arena, its blocks and the moving box, plus a HUD
// with the live simulation counters.
func renderWorld(w *sim.World, paused bool) string {
	arenaW, arenaH := w.ArenaSize()

	grid := make([][]byte, arenaH)
	for y := range grid {
		grid[y] = make([]byte, arenaW)
	}

	for _, block := range w.Blocks() {
		stamp(grid, block, cellBlock, arenaW, arenaH)
	}
	stamp(grid, w.Box(), cellBox, arenaW, arenaH)

	var sb strings.Builder
	sb.WriteString(borderStyle.Render("┌" + strings.Repeat("─", arenaW) + "┐"))
	sb.WriteByte('\n')

	for y := range arenaH {
		sb.WriteString(borderStyle.Render("│"))
		x := 0
		for x < arenaW {
			kind := grid[y][x]
			run := 0
			for x+run < arenaW && grid[y][x+run] == kind {
				run++
			}
			switch kind {
			case cellBlock:
				sb.WriteString(blockStyle.Render(strings.Repeat("▒", run)))
			case cellBox:
				sb.WriteString(boxStyle.Render(strings.Repeat("█", run)))
			default:
				sb.WriteString(strings.Repeat(" ", run))
			}
			x += run
		}
		sb.WriteString(borderStyle.Render("│"))
		sb.WriteByte('\n')
	}

	sb.WriteString(borderStyle.Render("└" + strings.Repeat("─", arenaW) + "┘"))
	sb.WriteByte('\n')

	state := ""
	if paused {
		state = "  [paused]"
	}
	hud := fmt.Sprintf("tick %d  impacts %d  v=%s%s",
		w.Tick(), w.Impacts(), w.Velocity(), state)
	sb.WriteString(hudStyle.Render(hud))
	sb.WriteByte('\n')
	sb.WriteString(helpStyle.Render("arrows/wasd steer · space pause · r reset · q quit"))

	return sb.String()
}

// stamp marks every arena cell overlapped by r. Block coordinates are
// whole cells; the box lands between cells, so covered cells are derived
// from the rectangle's fixed-point extents.
func stamp(grid [][]byte, r geom.Rect, kind byte, arenaW, arenaH int) {
	x0 := r.Min().X.Floor()
	y0 := r.Min().Y.Floor()
	// Max is exclusive: a rectangle ending exactly on a cell boundary does
	// not spill into the next cell.
	x1 := (r.Max().X - 1).Floor()
	y1 := (r.Max().Y - 1).Floor()

	for y := max(y0, 0); y <= min(y1, arenaH-1); y++ {
		for x := max(x0, 0); x <= min(x1, arenaW-1); x++ {
			grid[y][x] = kind
		}
	}
}
