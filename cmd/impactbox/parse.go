package main

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/impactbox/internal/fixed"
	"github.com/vovakirdan/impactbox/internal/geom"
)

// parseVec parses "x,y" where both components are decimal fixed-point
// values, e.g. "3,-4" or "0.5,1.25".
func parseVec(s string) (geom.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Vec{}, fmt.Errorf("want x,y but got %q", s)
	}
	x, err := fixed.Parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return geom.Vec{}, err
	}
	y, err := fixed.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return geom.Vec{}, err
	}
	return geom.Vec{X: x, Y: y}, nil
}

// parseRect parses "x,y,w,h" with decimal fixed-point components.
func parseRect(s string) (geom.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Rect{}, fmt.Errorf("want x,y,w,h but got %q", s)
	}
	vals := make([]fixed.Fp, 4)
	for i, p := range parts {
		v, err := fixed.Parse(strings.TrimSpace(p))
		if err != nil {
			return geom.Rect{}, err
		}
		vals[i] = v
	}
	return geom.Rect{
		Pos:  geom.Vec{X: vals[0], Y: vals[1]},
		Size: geom.Vec{X: vals[2], Y: vals[3]},
	}, nil
}
