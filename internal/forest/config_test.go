package forest

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"default", func(*Config) {}, nil},
		{"zero rows", func(c *Config) { c.Rows = 0 }, ErrInvalidConfig},
		{"negative cols", func(c *Config) { c.Cols = -3 }, ErrInvalidConfig},
		{"huge grid", func(c *Config) { c.Rows, c.Cols = 1<<14, 1<<14 }, ErrResource},
		{"bad topology", func(c *Config) { c.Topology = 9 }, ErrInvalidConfig},
		{"growth above one", func(c *Config) { c.GrowthChance = 1.5 }, ErrInvalidConfig},
		{"ignition NaN", func(c *Config) { c.IgnitionChance = math.NaN() }, ErrInvalidConfig},
		{"negative persistence", func(c *Config) { c.Persistence = -1 }, ErrInvalidConfig},
		{"persistence overflow", func(c *Config) { c.Persistence = 256 }, ErrInvalidConfig},
		{"density overflow", func(c *Config) { c.Density = 101 }, ErrInvalidConfig},
		{"clustered without scale", func(c *Config) { c.Init = InitClustered; c.ClusterScale = 0 }, ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if _, err := New(cfg); !errors.Is(err, tc.want) {
				t.Fatalf("New accepted invalid config: %v", err)
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(DefaultConfig(), map[string]string{
		"w":                "64",
		"h":                "32",
		"topology":         "hex",
		"p":                "100",
		"f":                "1000",
		"persistence":      "3",
		"burnout":          "empty",
		"decay_contagious": "false",
		"init":             "seed",
		"seed":             "42",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Cols != 64 || cfg.Rows != 32 || cfg.Topology != Hex6 {
		t.Fatalf("grid fields not applied: %+v", cfg)
	}
	if cfg.GrowthChance != 0.01 || cfg.IgnitionChance != 0.001 {
		t.Fatalf("odds not converted: growth=%v ignition=%v", cfg.GrowthChance, cfg.IgnitionChance)
	}
	if cfg.Persistence != 3 || cfg.Burnout != BurnoutEmpty || cfg.DecayContagious || cfg.Init != InitSeed || cfg.Seed != 42 {
		t.Fatalf("fire fields not applied: %+v", cfg)
	}

	cfg, err = FromMap(DefaultConfig(), map[string]string{"f": "0"})
	if err != nil || cfg.IgnitionChance != 0 {
		t.Fatalf("f=0 should disable ignition: %v %v", cfg.IgnitionChance, err)
	}

	for _, bad := range []map[string]string{
		{"colour": "red"},
		{"density": "lots"},
		{"p": "-5"},
		{"burnout": "charcoal"},
	} {
		if _, err := FromMap(DefaultConfig(), bad); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%v: expected ErrInvalidConfig, got %v", bad, err)
		}
	}
}

func TestTerminates(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   bool
	}{
		{"batch", func(*Config) {}, true},
		{"growth into ash", func(c *Config) { c.GrowthChance = 0.1 }, true},
		{"growth into empty", func(c *Config) { c.GrowthChance = 0.1; c.Burnout = BurnoutEmpty }, false},
		{"lightning", func(c *Config) { c.IgnitionChance = 0.001 }, false},
		{"fire line", func(c *Config) { c.Init = InitFireLine }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if got := cfg.Terminates(); got != tc.want {
				t.Fatalf("Terminates() = %v, want %v", got, tc.want)
			}
		})
	}
}
