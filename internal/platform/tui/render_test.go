package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/impactbox/internal/geom"
	"github.com/vovakirdan/impactbox/internal/scene"
	"github.com/vovakirdan/impactbox/internal/sim"
)

func testWorld(t *testing.T) *sim.World {
	t.Helper()
	sc := scene.Scene{
		Name:     "render-test",
		Ticks:    100,
		ArenaW:   12,
		ArenaH:   6,
		Box:      geom.R(2, 2, 2, 1),
		Velocity: geom.Vec{},
		Blocks:   []geom.Rect{geom.R(8, 0, 2, 3)},
	}
	return sim.New(sc)
}

func TestStampCoversCells(t *testing.T) {
	grid := make([][]byte, 6)
	for y := range grid {
		grid[y] = make([]byte, 12)
	}

	stamp(grid, geom.R(8, 0, 2, 3), cellBlock, 12, 6)

	for y := 0; y < 3; y++ {
		for x := 8; x < 10; x++ {
			if grid[y][x] != cellBlock {
				t.Fatalf("cell (%d,%d) not stamped", x, y)
			}
		}
	}
	if grid[0][10] != cellEmpty {
		t.Fatalf("cell past the right edge was stamped")
	}
	if grid[3][8] != cellEmpty {
		t.Fatalf("cell past the bottom edge was stamped")
	}
}

func TestStampClampsToArena(t *testing.T) {
	grid := make([][]byte, 4)
	for y := range grid {
		grid[y] = make([]byte, 4)
	}

	// Walls sit outside the arena; stamping them must not panic.
	stamp(grid, geom.R(-1, -1, 6, 1), cellBlock, 4, 4)
	stamp(grid, geom.R(4, 0, 1, 4), cellBlock, 4, 4)

	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] != cellEmpty {
				t.Fatalf("cell (%d,%d) stamped by out-of-arena rect", x, y)
			}
		}
	}
}

func TestRenderWorldShowsHUD(t *testing.T) {
	w := testWorld(t)

	out := renderWorld(w, false)
	if !strings.Contains(out, "tick 0") {
		t.Errorf("HUD missing tick counter:\n%s", out)
	}
	if !strings.Contains(out, "impacts 0") {
		t.Errorf("HUD missing impact counter:\n%s", out)
	}
	if strings.Contains(out, "[paused]") {
		t.Errorf("unpaused view shows paused marker")
	}

	paused := renderWorld(w, true)
	if !strings.Contains(paused, "[paused]") {
		t.Errorf("paused view missing paused marker")
	}
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"quit q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, ActionNudgeUp},
		{"wasd left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, ActionNudgeLeft},
		{"pause space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, ActionPause},
		{"reset", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, ActionReset},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
