// Package plot renders sweep series as terminal charts.
package plot

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/avelar/physlab/internal/calc"
)

const (
	DefaultWidth  = 70
	DefaultHeight = 12
)

// Render draws the series with asciigraph and appends an x-axis footer with
// the sweep bounds. A nil or empty series renders as an informational line.
func Render(s *calc.Series, width, height int) string {
	if s == nil || len(s.Points) == 0 {
		return "no data to plot"
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	graph := asciigraph.Plot(s.Ys(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(s.Title),
	)

	lo, hi := s.XRange()
	left := fmt.Sprintf("%.1f", lo)
	right := fmt.Sprintf("%.1f", hi)
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	footer := fmt.Sprintf("  %s%s%s  (%s)", left, strings.Repeat(" ", pad), right, s.XLabel)

	return graph + "\n" + footer
}
