package forest

import "forest-ca/internal/core"

// Variant is a named preset registered with the sim registry.
type Variant struct {
	Name   string
	Config Config
}

// Variants returns the built-in presets. Every preset starts from
// DefaultConfig, so map overrides behave the same across them.
func Variants() []Variant {
	base := DefaultConfig()

	forest := base
	forest.Init = InitSeed
	forest.GrowthChance = 1.0 / 100
	forest.IgnitionChance = 1.0 / 1000
	forest.Burnout = BurnoutEmpty

	line := forest
	line.Init = InitFireLine
	line.IgnitionChance = 0

	hex := forest
	hex.Topology = Hex6

	tri := forest
	tri.Topology = TriAll12

	batch := base
	batch.Topology = VonNeumann4

	return []Variant{
		{Name: "forest", Config: forest},
		{Name: "forest-line", Config: line},
		{Name: "forest-hex", Config: hex},
		{Name: "forest-tri", Config: tri},
		{Name: "forest-batch", Config: batch},
	}
}

// LookupVariant returns the preset registered under name.
func LookupVariant(name string) (Config, bool) {
	for _, v := range Variants() {
		if v.Name == name {
			return v.Config, true
		}
	}
	return Config{}, false
}

// NewFromMap builds a sim from base with flag-style overrides applied.
func NewFromMap(name string, base Config, overrides map[string]string) (*Sim, error) {
	cfg, err := FromMap(base, overrides)
	if err != nil {
		return nil, err
	}
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	s.name = name
	return s, nil
}

func init() {
	for _, v := range Variants() {
		core.Register(v.Name, func(cfg map[string]string) (core.Sim, error) {
			s, err := NewFromMap(v.Name, v.Config, cfg)
			if err != nil {
				return nil, err
			}
			return s, nil
		})
	}
}
