package calc

import "fmt"

// EV computes battery drain over a driven distance. Remaining capacity below
// zero is a depleted condition: the metric is pinned to a fixed "0.00"
// display with a -100% delta and a warning, never a negative value.
type EV struct{}

func NewEV() *EV {
	return &EV{}
}

func (e *EV) Name() string  { return "ev" }
func (e *EV) Title() string { return "EV Battery Drain" }

func (e *EV) Description() string {
	return "battery drain from capacity, consumption and distance"
}

func (e *EV) Fields() []Field {
	return []Field{
		{Name: "capacity", Label: "Battery Capacity", Unit: "kWh", Min: 0.1, Default: 75, Step: 1},
		{Name: "consumption", Label: "Avg. Consumption", Unit: "kWh/100km", Min: 1.0, Default: 18, Step: 0.5},
		{Name: "distance", Label: "Distance Traveled", Unit: "km", Min: 0, Default: 150, Step: 5},
	}
}

// Drained is the energy consumed after driving the given distance.
func (e *EV) Drained(distance, consumption float64) float64 {
	return distance * consumption / 100
}

// Remaining floors at zero; the raw (possibly negative) value only decides
// the depleted condition.
func (e *EV) Remaining(capacity, distance, consumption float64) float64 {
	r := capacity - e.Drained(distance, consumption)
	if r < 0 {
		return 0
	}
	return r
}

// MaxRangeEstimate is the sweep domain: nominal range plus 20% so the curve
// shows the battery hitting empty.
func (e *EV) MaxRangeEstimate(capacity, consumption float64) float64 {
	return capacity * 100 / consumption * 1.2
}

func (e *EV) Compute(p Params) Result {
	Clamp(e.Fields(), p)
	capacity := p["capacity"]
	consumption := p["consumption"]
	distance := p["distance"]

	drained := e.Drained(distance, consumption)
	raw := capacity - drained
	depleted := raw < 0

	remaining := Metric{Label: "Remaining Capacity", Unit: "kWh"}
	if depleted {
		remaining.Value = 0
		remaining.Display = "0.00"
		remaining.Delta = "-100%"
	} else {
		remaining.Value = raw
		remaining.Delta = fmt.Sprintf("-%.1f%%", drained/capacity*100)
	}

	distances := Linspace(0, e.MaxRangeEstimate(capacity, consumption), 100)
	points := make([]Point, len(distances))
	for i, d := range distances {
		points[i] = Point{X: d, Y: e.Remaining(capacity, d, consumption)}
	}

	res := Result{
		Metrics: []Metric{
			{Label: "Energy Consumed", Value: drained, Unit: "kWh"},
			remaining,
		},
		Series: &Series{
			Title:  "Remaining Capacity vs. Distance",
			XLabel: "Distance (km)",
			YLabel: "Remaining (kWh)",
			Points: points,
		},
	}
	if depleted {
		res.Warning = "battery depleted! you've run out of charge"
	}
	return res
}
