//go:build ignore

// Scratch tool that prints the default rendering of representative sums, used
// to pin the output baseline documented in internal/output.
package main

import (
	"fmt"
	"math"
	"strconv"
)

func main() {
	sums := [][2]float64{
		{3, 5},
		{2.5, -1.5},
		{0.1, 0.2},
		{0.5, 0.25},
		{1e3, 5e2},
		{1e308, 1e308},
		{-1e308, -1e308},
		{math.Inf(1), math.Inf(-1)},
		{math.Copysign(0, -1), math.Copysign(0, -1)},
		{1e21, 0},
	}

	for _, s := range sums {
		v := s[0] + s[1]
		rendered := strconv.FormatFloat(v, 'g', -1, 64)
		fmt.Printf("%24v + %-24v = %-24s (fmt %%v: %v)\n", s[0], s[1], rendered, v)

		if _, err := strconv.ParseFloat(rendered, 64); err != nil {
			fmt.Printf("  !! %q does not parse back: %v\n", rendered, err)
		}
	}
}
