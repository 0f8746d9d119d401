package calc

import (
	"fmt"
	"math"
)

// Wind computes turbine power output P = 0.5 * rho * A * v^3 with A = pi*r^2.
type Wind struct {
	Density float64
}

func NewWind() *Wind {
	return &Wind{Density: AirDensity}
}

func (w *Wind) Name() string  { return "wind" }
func (w *Wind) Title() string { return "Wind Turbine Power" }

func (w *Wind) Description() string {
	return "power output from wind speed and blade length"
}

func (w *Wind) Fields() []Field {
	return []Field{
		{Name: "wind_speed", Label: "Wind Speed", Unit: "m/s", Min: 0, Default: 10, Step: 0.5},
		{Name: "blade_length", Label: "Blade Length", Unit: "m", Min: 0.1, Default: 50, Step: 1},
	}
}

// SweptArea is the circular area traced by the blades, pi*r^2.
func (w *Wind) SweptArea(bladeLength float64) float64 {
	return math.Pi * bladeLength * bladeLength
}

// PowerKw evaluates the power formula at a given wind speed and swept area.
func (w *Wind) PowerKw(windSpeed, area float64) float64 {
	return 0.5 * w.Density * area * windSpeed * windSpeed * windSpeed / 1000
}

func (w *Wind) Compute(p Params) Result {
	Clamp(w.Fields(), p)
	v := p["wind_speed"]
	r := p["blade_length"]

	area := w.SweptArea(r)
	power := w.PowerKw(v, area)

	// Sweep wind speed at fixed swept area.
	speeds := Linspace(0, 2*v+5, 50)
	points := make([]Point, len(speeds))
	for i, s := range speeds {
		points[i] = Point{X: s, Y: w.PowerKw(s, area)}
	}

	return Result{
		Metrics: []Metric{
			{Label: "Swept Area", Value: area, Unit: "m²"},
			{Label: "Power Output", Value: power, Unit: "kW"},
		},
		Series: &Series{
			Title:  "Power vs. Wind Speed",
			XLabel: "Wind Speed (m/s)",
			YLabel: "Power (kW)",
			Points: points,
		},
		Note: fmt.Sprintf("air density fixed at %.3f kg/m³", w.Density),
	}
}
