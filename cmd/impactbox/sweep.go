package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/impactbox/internal/collision"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <rect> <delta> <rect>",
	Short: "Sweep a moving rectangle against a target",
	Long: `Move the first rectangle by <delta> over one tick and report whether
it contacts the target rectangle on the way. Contacts at or past the end
of the motion are not reported; a result time of 0 means the rectangles
already overlap.

Rectangles are written x,y,w,h and the delta x,y, all in decimal
fixed-point values.

Examples:
  impactbox sweep 0,0,2,2 6,0 5,-2,2,6
  impactbox sweep 0,0,1,1 0.5,0.5 2,2,4,4`,
	Args: cobra.ExactArgs(3),
	Run:  runSweep,
}

func runSweep(cmd *cobra.Command, args []string) {
	moving, err := parseRect(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad moving rectangle: %v\n", err)
		os.Exit(1)
	}
	delta, err := parseVec(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad delta: %v\n", err)
		os.Exit(1)
	}
	target, err := parseRect(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad target rectangle: %v\n", err)
		os.Exit(1)
	}

	res, hit := collision.SweptRectVsRect(moving, delta, target)
	if !hit {
		fmt.Println("miss")
		return
	}

	fmt.Printf("hit at t=%s\n", res.ClosestTime)
	fmt.Printf("  center %s\n", res.ContactPoint)
	fmt.Printf("  normal %s\n", res.ContactNormal)
}
