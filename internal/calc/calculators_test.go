package calc_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avelar/physlab/internal/calc"
)

var _ = Describe("Wind", func() {
	var w *calc.Wind

	BeforeEach(func() {
		w = calc.NewWind()
	})

	It("computes the swept area as pi*r^2", func() {
		Expect(w.SweptArea(50)).To(BeNumerically("~", math.Pi*2500, 1e-9))
		Expect(w.SweptArea(50)).To(BeNumerically("~", 7853.98, 0.01))
	})

	It("computes power at the reference point", func() {
		area := w.SweptArea(50)
		Expect(w.PowerKw(10, area)).To(BeNumerically("~", 4810.68, 0.01))
	})

	It("is monotonically non-decreasing in wind speed and blade length", func() {
		area := w.SweptArea(30)
		prev := -1.0
		for v := 0.0; v <= 40; v += 2.5 {
			p := w.PowerKw(v, area)
			Expect(p).To(BeNumerically(">=", prev))
			prev = p
		}

		prev = -1.0
		for r := 1.0; r <= 80; r += 4 {
			p := w.PowerKw(12, w.SweptArea(r))
			Expect(p).To(BeNumerically(">=", prev))
			prev = p
		}
	})

	It("sweeps 50 points covering [0, 2v+5]", func() {
		res := w.Compute(calc.Params{"wind_speed": 10, "blade_length": 50})
		Expect(res.Series).NotTo(BeNil())
		Expect(res.Series.Points).To(HaveLen(50))
		lo, hi := res.Series.XRange()
		Expect(lo).To(BeZero())
		Expect(hi).To(BeNumerically("~", 25, 1e-9))
		for i := 1; i < len(res.Series.Points); i++ {
			Expect(res.Series.Points[i].X).To(BeNumerically(">", res.Series.Points[i-1].X))
		}
	})
})

var _ = Describe("Solar", func() {
	var s *calc.Solar

	BeforeEach(func() {
		s = calc.NewSolar()
	})

	It("produces zero energy at zero irradiance regardless of panel", func() {
		Expect(s.EnergyWh(20, 0, 18)).To(BeZero())
		Expect(s.EnergyWh(500, 0, 40)).To(BeZero())
		Expect(s.EnergyWh(0.1, 0, 1)).To(BeZero())
	})

	It("computes energy for the default inputs", func() {
		Expect(s.EnergyWh(20, 1000, 18)).To(BeNumerically("~", 3600, 1e-9))
	})

	It("sweeps 50 irradiance points covering [0, 1400]", func() {
		res := s.Compute(calc.Params{"irradiance": 1000, "area": 20, "efficiency": 18})
		Expect(res.Series.Points).To(HaveLen(50))
		lo, hi := res.Series.XRange()
		Expect(lo).To(BeZero())
		Expect(hi).To(Equal(1400.0))
		Expect(res.Series.Points[0].Y).To(BeZero())
	})

	It("clamps efficiency to 40%", func() {
		p := calc.Params{"irradiance": 1000, "area": 10, "efficiency": 95}
		res := s.Compute(p)
		Expect(res.Metrics[0].Value).To(BeNumerically("~", 10*1000*0.40, 1e-9))
	})
})

var _ = Describe("EV", func() {
	var e *calc.EV

	BeforeEach(func() {
		e = calc.NewEV()
	})

	It("matches remaining = max(0, capacity - d*c/100)", func() {
		for _, d := range []float64{0, 50, 150, 400, 600} {
			want := math.Max(0, 75-d*18/100)
			Expect(e.Remaining(75, d, 18)).To(BeNumerically("~", want, 1e-12))
		}
	})

	It("is monotonically non-increasing in distance", func() {
		prev := math.Inf(1)
		for d := 0.0; d <= 700; d += 25 {
			r := e.Remaining(75, d, 18)
			Expect(r).To(BeNumerically("<=", prev))
			prev = r
		}
	})

	It("reports drain and delta for a healthy battery", func() {
		res := e.Compute(calc.Params{"capacity": 75, "consumption": 18, "distance": 150})
		Expect(res.Warning).To(BeEmpty())
		Expect(res.Metrics[0].Value).To(BeNumerically("~", 27, 1e-9))
		Expect(res.Metrics[1].Value).To(BeNumerically("~", 48, 1e-9))
		Expect(res.Metrics[1].Delta).To(Equal("-36.0%"))
		Expect(res.Metrics[1].Display).To(BeEmpty())
	})

	It("pins the depleted display to 0.00 / -100% with a warning", func() {
		res := e.Compute(calc.Params{"capacity": 75, "consumption": 18, "distance": 600})
		Expect(res.Warning).NotTo(BeEmpty())
		remaining := res.Metrics[1]
		Expect(remaining.Value).To(BeZero())
		Expect(remaining.Display).To(Equal("0.00"))
		Expect(remaining.Delta).To(Equal("-100%"))
	})

	It("sweeps 100 points out to 1.2x the estimated range", func() {
		res := e.Compute(calc.Params{"capacity": 75, "consumption": 18, "distance": 0})
		Expect(res.Series.Points).To(HaveLen(100))
		_, hi := res.Series.XRange()
		Expect(hi).To(BeNumerically("~", 75*100/18*1.2, 1e-9))
		last := res.Series.Points[len(res.Series.Points)-1]
		Expect(last.Y).To(BeZero())
	})
})

var _ = Describe("Projectile", func() {
	var pr *calc.Projectile

	BeforeEach(func() {
		pr = calc.NewProjectile()
	})

	It("matches the reference 45 degree launch", func() {
		h, r, t := pr.Kinematics(50, 45)
		Expect(h).To(BeNumerically("~", 63.73, 0.01))
		Expect(r).To(BeNumerically("~", 254.84, 0.01))
		Expect(t).To(BeNumerically("~", 7.2, 0.01))
	})

	It("returns all zeros for a flat or motionless launch", func() {
		for _, in := range [][2]float64{{50, 0}, {0, 45}, {0, 0}} {
			h, r, t := pr.Kinematics(in[0], in[1])
			Expect(h).To(BeZero())
			Expect(r).To(BeZero())
			Expect(t).To(BeZero())
		}
	})

	It("handles the vertical launch special case", func() {
		h, r, t := pr.Kinematics(50, 90)
		Expect(r).To(BeZero())
		Expect(h).To(BeNumerically("~", 2500/(2*9.81), 1e-9))
		Expect(h).To(BeNumerically("~", 127.42, 0.01))
		Expect(t).To(BeNumerically("~", 100/9.81, 1e-9))
	})

	It("produces a 100-point trajectory returning to launch height", func() {
		res := pr.Compute(calc.Params{"velocity": 50, "angle": 45})
		Expect(res.Series).NotTo(BeNil())
		Expect(res.Series.Points).To(HaveLen(100))
		first := res.Series.Points[0]
		last := res.Series.Points[99]
		Expect(first.X).To(BeZero())
		Expect(first.Y).To(BeZero())
		Expect(last.Y).To(BeNumerically("~", 0, 1e-6))
		Expect(last.X).To(BeNumerically("~", 254.84, 0.01))
	})

	It("produces no trajectory when flight time is zero", func() {
		res := pr.Compute(calc.Params{"velocity": 0, "angle": 45})
		Expect(res.Series).To(BeNil())
		Expect(res.Note).NotTo(BeEmpty())
		for _, m := range res.Metrics {
			Expect(m.Value).To(BeZero())
		}
	})
})
