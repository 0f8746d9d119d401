// Package config loads and saves calculator settings from yaml files and
// carries the named presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avelar/physlab/internal/calc"
)

type Config struct {
	Calculator string           `yaml:"calculator"`
	Wind       WindConfig       `yaml:"wind"`
	Solar      SolarConfig      `yaml:"solar"`
	EV         EVConfig         `yaml:"ev"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

type WindConfig struct {
	WindSpeed   float64 `yaml:"wind_speed"`
	BladeLength float64 `yaml:"blade_length"`
}

type SolarConfig struct {
	Irradiance float64 `yaml:"irradiance"`
	Area       float64 `yaml:"area"`
	Efficiency float64 `yaml:"efficiency"`
}

type EVConfig struct {
	Capacity    float64 `yaml:"capacity"`
	Consumption float64 `yaml:"consumption"`
	Distance    float64 `yaml:"distance"`
}

type ProjectileConfig struct {
	Velocity float64 `yaml:"velocity"`
	Angle    float64 `yaml:"angle"`
}

func DefaultConfig() *Config {
	return &Config{
		Calculator: "wind",
		Wind:       WindConfig{WindSpeed: 10, BladeLength: 50},
		Solar:      SolarConfig{Irradiance: 1000, Area: 20, Efficiency: 18},
		EV:         EVConfig{Capacity: 75, Consumption: 18, Distance: 150},
		Projectile: ProjectileConfig{Velocity: 50, Angle: 45},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params flattens the named calculator's settings into a parameter map.
func (c *Config) Params(calculator string) (calc.Params, error) {
	switch calculator {
	case "wind":
		return calc.Params{
			"wind_speed":   c.Wind.WindSpeed,
			"blade_length": c.Wind.BladeLength,
		}, nil
	case "solar":
		return calc.Params{
			"irradiance": c.Solar.Irradiance,
			"area":       c.Solar.Area,
			"efficiency": c.Solar.Efficiency,
		}, nil
	case "ev":
		return calc.Params{
			"capacity":    c.EV.Capacity,
			"consumption": c.EV.Consumption,
			"distance":    c.EV.Distance,
		}, nil
	case "projectile":
		return calc.Params{
			"velocity": c.Projectile.Velocity,
			"angle":    c.Projectile.Angle,
		}, nil
	}
	return nil, fmt.Errorf("unknown calculator: %s", calculator)
}
