package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/impactbox/internal/platform/tui"
	"github.com/vovakirdan/impactbox/internal/scene"
	"github.com/vovakirdan/impactbox/internal/sim"
)

var flagDemoScene string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch a box bounce around an arena",
	Long: `Open the interactive playground: a box bounces around the arena,
deflecting off walls and blocks. Steering keys nudge its velocity.

Controls:
  Arrows/WASD - Nudge the box
  Space/P     - Pause
  R           - Reset
  Q/Ctrl+C    - Quit

Scene search order: --scene path, then ./scenes/playground.yaml, then
the built-in default.

Examples:
  impactbox demo
  impactbox demo --scene ./scenes/mine.yaml --fps 30`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagDemoScene, "scene", "", "Path to scene YAML")
}

func runDemo(cmd *cobra.Command, args []string) {
	sc, err := scene.Load(flagDemoScene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Warn early when the terminal cannot fit the arena.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < sc.ArenaW+2 || h < sc.ArenaH+4 {
			fmt.Fprintf(os.Stderr,
				"Warning: terminal %dx%d is smaller than the %dx%d arena\n",
				w, h, sc.ArenaW, sc.ArenaH)
		}
	}

	if err := tui.Run(sim.New(sc), flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}
