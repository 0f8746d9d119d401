package config

import (
	"sort"

	"github.com/avelar/physlab/internal/calc"
)

// Presets are named parameter sets per calculator.
var Presets = map[string]map[string]calc.Params{
	"wind": {
		"breeze":   {"wind_speed": 4, "blade_length": 30},
		"nominal":  {"wind_speed": 10, "blade_length": 50},
		"gale":     {"wind_speed": 22, "blade_length": 50},
		"offshore": {"wind_speed": 12, "blade_length": 80},
	},
	"solar": {
		"overcast": {"irradiance": 250, "area": 20, "efficiency": 18},
		"noon":     {"irradiance": 1000, "area": 20, "efficiency": 18},
		"rooftop":  {"irradiance": 800, "area": 35, "efficiency": 21},
	},
	"ev": {
		"city":     {"capacity": 60, "consumption": 14, "distance": 40},
		"highway":  {"capacity": 75, "consumption": 22, "distance": 250},
		"roadtrip": {"capacity": 100, "consumption": 18, "distance": 600},
	},
	"projectile": {
		"flat":     {"velocity": 60, "angle": 15},
		"lob":      {"velocity": 50, "angle": 45},
		"vertical": {"velocity": 50, "angle": 90},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(calculator, name string) calc.Params {
	group, ok := Presets[calculator]
	if !ok {
		return nil
	}
	p, ok := group[name]
	if !ok {
		return nil
	}
	out := make(calc.Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ListPresets returns the sorted preset names for a calculator, nil if the
// calculator has none.
func ListPresets(calculator string) []string {
	group, ok := Presets[calculator]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
