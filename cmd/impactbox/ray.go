package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/impactbox/internal/collision"
)

var rayCmd = &cobra.Command{
	Use:   "ray <origin> <dir> <rect>",
	Short: "Cast a ray against a rectangle",
	Long: `Cast a ray from <origin> along <dir> against <rect> and print the
contact details. The ray extends forward without limit; a contact time
greater than 1 means the hit lies past the end of the direction vector.

Vectors are written x,y and rectangles x,y,w,h. Components are decimal
fixed-point values, so fractions like 0.5 are exact.

Examples:
  impactbox ray 1,2 3,4 5,6,7,8
  impactbox ray 0,5 1,0 10,0,4,10`,
	Args: cobra.ExactArgs(3),
	Run:  runRay,
}

func runRay(cmd *cobra.Command, args []string) {
	origin, err := parseVec(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad origin: %v\n", err)
		os.Exit(1)
	}
	dir, err := parseVec(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad direction: %v\n", err)
		os.Exit(1)
	}
	target, err := parseRect(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad rectangle: %v\n", err)
		os.Exit(1)
	}

	res, hit := collision.RayVsRect(origin, dir, target)
	if !hit {
		fmt.Println("miss")
		return
	}

	fmt.Printf("hit at t=%s\n", res.ClosestTime)
	fmt.Printf("  point  %s\n", res.ContactPoint)
	fmt.Printf("  normal %s\n", res.ContactNormal)
}
