package calc

import "math"

// Projectile computes ideal launch kinematics: max height, range and time of
// flight, plus the parabolic trajectory. Launch and landing height are equal
// and drag is ignored.
type Projectile struct {
	Gravity float64
}

func NewProjectile() *Projectile {
	return &Projectile{Gravity: Gravity}
}

func (pr *Projectile) Name() string  { return "projectile" }
func (pr *Projectile) Title() string { return "Projectile Motion" }

func (pr *Projectile) Description() string {
	return "trajectory from initial velocity and launch angle"
}

func (pr *Projectile) Fields() []Field {
	return []Field{
		{Name: "velocity", Label: "Initial Velocity", Unit: "m/s", Min: 0, Default: 50, Step: 1},
		{Name: "angle", Label: "Launch Angle", Unit: "°", Min: 0, Max: 90, Default: 45, Step: 1, Integer: true},
	}
}

// Kinematics returns (maxHeight, range, timeOfFlight). Angle 0 or zero
// velocity yields all zeros; a vertical launch has zero range.
func (pr *Projectile) Kinematics(velocity, angleDeg float64) (height, dist, tof float64) {
	switch {
	case angleDeg == 0 || velocity == 0:
		return 0, 0, 0
	case angleDeg == 90:
		height = velocity * velocity / (2 * pr.Gravity)
		tof = 2 * velocity / pr.Gravity
		return height, 0, tof
	}
	rad := angleDeg * math.Pi / 180
	sin := math.Sin(rad)
	height = velocity * velocity * sin * sin / (2 * pr.Gravity)
	dist = velocity * velocity * math.Sin(2*rad) / pr.Gravity
	tof = 2 * velocity * sin / pr.Gravity
	return height, dist, tof
}

func (pr *Projectile) Compute(p Params) Result {
	Clamp(pr.Fields(), p)
	velocity := p["velocity"]
	angle := p["angle"]

	height, dist, tof := pr.Kinematics(velocity, angle)

	res := Result{
		Metrics: []Metric{
			{Label: "Maximum Height", Value: height, Unit: "m"},
			{Label: "Range", Value: dist, Unit: "m"},
			{Label: "Time of Flight", Value: tof, Unit: "s"},
		},
	}

	if tof <= 0 {
		res.Note = "no trajectory to plot (initial velocity or launch angle is zero)"
		return res
	}

	rad := angle * math.Pi / 180
	vx := velocity * math.Cos(rad)
	vy := velocity * math.Sin(rad)
	times := Linspace(0, tof, 100)
	points := make([]Point, len(times))
	for i, t := range times {
		points[i] = Point{
			X: vx * t,
			Y: vy*t - 0.5*pr.Gravity*t*t,
		}
	}
	res.Series = &Series{
		Title:  "Projectile Path",
		XLabel: "Horizontal Distance (m)",
		YLabel: "Height (m)",
		Points: points,
	}
	return res
}
