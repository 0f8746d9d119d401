package calc

import "fmt"

// Registry maps calculator names to constructors.
type Registry struct {
	calculators map[string]func() Calculator
	order       []string
}

func NewRegistry() *Registry {
	r := &Registry{calculators: make(map[string]func() Calculator)}

	r.register("wind", func() Calculator { return NewWind() })
	r.register("solar", func() Calculator { return NewSolar() })
	r.register("ev", func() Calculator { return NewEV() })
	r.register("projectile", func() Calculator { return NewProjectile() })

	return r
}

func (r *Registry) register(name string, fn func() Calculator) {
	r.calculators[name] = fn
	r.order = append(r.order, name)
}

func (r *Registry) Get(name string) (Calculator, error) {
	fn, ok := r.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}
	return fn(), nil
}

// Names returns calculator names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
