// impactbox is a deterministic fixed-point collision playground for the
// terminal.
//
// Usage:
//
//	impactbox ray <origin> <dir> <rect>     - Cast a ray against a rectangle
//	impactbox sweep <rect> <delta> <rect>   - Sweep a rectangle against another
//	impactbox demo                          - Interactive bouncing-box arena
//	impactbox run                           - Headless deterministic run
//	impactbox history                       - Browse saved runs
//	impactbox serve                         - Serve the playground over SSH
//
// Global flags:
//
//	--fps <rate>  - Set tick rate (default: 60)
//	--db <path>   - Set run database path (default: ~/.impactbox/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "impactbox",
	Short: "Deterministic fixed-point collision playground",
	Long: `impactbox is a 2D collision toolbox built on Q16.16 fixed-point
arithmetic. Every query and every simulation tick is bit-exact across
machines, which makes runs replayable and checksummable.

Available commands:
  ray      - Cast a ray against a rectangle and print the contact
  sweep    - Sweep a moving rectangle against a target over one tick
  demo     - Watch a box bounce around an arena, steer it live
  run      - Run a scene headless and record its checksum
  history  - Browse recorded runs
  serve    - Serve the demo over SSH

Examples:
  impactbox ray 1,2 3,4 5,6,7,8
  impactbox sweep 0,0,2,2 6,0 5,-2,2,6
  impactbox demo --scene ./scenes/mine.yaml
  impactbox run --ticks 1000
  impactbox serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.impactbox/runs.db", "Path to run database")

	rootCmd.AddCommand(rayCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
