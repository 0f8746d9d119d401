// Package calc implements the four physics calculators behind physlab.
// Each calculator is a pure function of its current inputs: Compute takes a
// parameter map and returns scalar metrics plus one sweep series for
// charting. Nothing is retained between calls.
package calc

import "math"

const (
	AirDensity = 1.225 // kg/m^3
	Gravity    = 9.81  // m/s^2
)

// Point is one sample of a sweep curve.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered sweep of (x, y) samples over one input variable.
type Series struct {
	Title  string
	XLabel string
	YLabel string
	Points []Point
}

// Ys returns the y values in order, the shape chart renderers want.
func (s *Series) Ys() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.Y
	}
	return ys
}

// XRange returns the bounds of the independent variable.
func (s *Series) XRange() (lo, hi float64) {
	if len(s.Points) == 0 {
		return 0, 0
	}
	return s.Points[0].X, s.Points[len(s.Points)-1].X
}

// Metric is one named scalar result. Display, when set, replaces the numeric
// rendering of Value; Delta is an optional relative-change annotation.
type Metric struct {
	Label   string
	Value   float64
	Unit    string
	Display string
	Delta   string
}

// Result is everything one evaluation produces. Series is nil when there is
// nothing to chart (projectile with zero flight time). Warning and Note are
// domain conditions, not errors.
type Result struct {
	Metrics []Metric
	Series  *Series
	Warning string
	Note    string
}

// Field describes one input: its bounds, default and step size. Max == 0
// means unbounded above. Integer fields are rounded at the boundary.
type Field struct {
	Name    string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Default float64
	Step    float64
	Integer bool
}

// Params carries the current input values keyed by field name.
type Params map[string]float64

// Calculator is the uniform contract shared by the four calculators.
type Calculator interface {
	Name() string
	Title() string
	Description() string
	Fields() []Field
	Compute(p Params) Result
}

// Defaults builds a parameter map from field defaults.
func Defaults(fields []Field) Params {
	p := make(Params, len(fields))
	for _, f := range fields {
		p[f.Name] = f.Default
	}
	return p
}

// Clamp enforces field bounds in place and fills missing values with
// defaults. Calculators never see out-of-domain inputs.
func Clamp(fields []Field, p Params) {
	for _, f := range fields {
		v, ok := p[f.Name]
		if !ok {
			p[f.Name] = f.Default
			continue
		}
		if f.Integer {
			v = math.Round(v)
		}
		if v < f.Min {
			v = f.Min
		}
		if f.Max > 0 && v > f.Max {
			v = f.Max
		}
		p[f.Name] = v
	}
}

// Linspace returns n evenly spaced samples covering [lo, hi] inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
