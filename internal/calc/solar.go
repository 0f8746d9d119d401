package calc

// Solar computes panel energy production over a one-hour period,
// E = area * irradiance * efficiency.
type Solar struct{}

func NewSolar() *Solar {
	return &Solar{}
}

func (s *Solar) Name() string  { return "solar" }
func (s *Solar) Title() string { return "Solar Panel Energy" }

func (s *Solar) Description() string {
	return "energy produced from irradiance, panel area and efficiency"
}

func (s *Solar) Fields() []Field {
	return []Field{
		{Name: "irradiance", Label: "Solar Irradiance", Unit: "W/m²", Min: 0, Default: 1000, Step: 50, Integer: true},
		{Name: "area", Label: "Panel Area", Unit: "m²", Min: 0.1, Default: 20, Step: 0.5},
		{Name: "efficiency", Label: "Efficiency", Unit: "%", Min: 0, Max: 40, Default: 18, Step: 1, Integer: true},
	}
}

// EnergyWh is the energy produced in one hour at the given irradiance.
func (s *Solar) EnergyWh(area, irradiance, efficiencyPct float64) float64 {
	return area * irradiance * (efficiencyPct / 100)
}

func (s *Solar) Compute(p Params) Result {
	Clamp(s.Fields(), p)
	irr := p["irradiance"]
	area := p["area"]
	eff := p["efficiency"]

	energy := s.EnergyWh(area, irr, eff)

	// Sweep irradiance at fixed area and efficiency.
	levels := Linspace(0, 1400, 50)
	points := make([]Point, len(levels))
	for i, lv := range levels {
		points[i] = Point{X: lv, Y: s.EnergyWh(area, lv, eff)}
	}

	return Result{
		Metrics: []Metric{
			{Label: "Energy Produced (1h)", Value: energy, Unit: "Wh"},
		},
		Series: &Series{
			Title:  "Energy vs. Solar Irradiance",
			XLabel: "Solar Irradiance (W/m²)",
			YLabel: "Energy (Wh)",
			Points: points,
		},
	}
}
