// Package config loads experiment settings from YAML layered over embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"forest-ca/internal/forest"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every section of an experiment file.
type Config struct {
	Forest ForestConfig `yaml:"forest"`
	Sweep  SweepConfig  `yaml:"sweep"`
	Output OutputConfig `yaml:"output"`
	Viewer ViewerConfig `yaml:"viewer"`
	Record RecordConfig `yaml:"record"`
}

// ForestConfig mirrors forest.Config with text-valued enums.
type ForestConfig struct {
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	Topology        string  `yaml:"topology"`
	Growth          float64 `yaml:"growth"`
	Ignition        float64 `yaml:"ignition"`
	Persistence     int     `yaml:"persistence"`
	Burnout         string  `yaml:"burnout"`
	DecayContagious bool    `yaml:"decay_contagious"`
	Init            string  `yaml:"init"`
	Density         int     `yaml:"density"`
	ClusterScale    float64 `yaml:"cluster_scale"`
	Seed            int64   `yaml:"seed"`
}

// SweepConfig holds batch sweep parameters.
type SweepConfig struct {
	From     int   `yaml:"from"`
	To       int   `yaml:"to"`
	Step     int   `yaml:"step"`
	Trials   int   `yaml:"trials"`
	Workers  int   `yaml:"workers"` // 0 = runtime.NumCPU()
	Seed     int64 `yaml:"seed"`
	MaxTicks int   `yaml:"max_ticks"`
}

// OutputConfig controls where results land.
type OutputConfig struct {
	Dir            string `yaml:"dir"`
	Plot           bool   `yaml:"plot"`
	SnapshotConfig bool   `yaml:"snapshot_config"`
}

// ViewerConfig holds live viewer settings.
type ViewerConfig struct {
	Sim      string `yaml:"sim"`
	Scale    int    `yaml:"scale"`
	TPS      int    `yaml:"tps"`
	HUDWidth int    `yaml:"hud_width"`
}

// RecordConfig holds video recorder settings.
type RecordConfig struct {
	Path    string `yaml:"path"`
	Frames  int    `yaml:"frames"`
	FPS     int    `yaml:"fps"`
	Scale   int    `yaml:"scale"`
	Quality int    `yaml:"quality"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The forest section is
// validated so bad files fail here rather than mid-run.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if _, err := cfg.ForestConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ForestConfig converts the forest section into a validated forest.Config.
func (c *Config) ForestConfig() (forest.Config, error) {
	f := c.Forest
	out := forest.DefaultConfig()
	out.Rows = f.Rows
	out.Cols = f.Cols
	out.GrowthChance = f.Growth
	out.IgnitionChance = f.Ignition
	out.Persistence = f.Persistence
	out.DecayContagious = f.DecayContagious
	out.Density = f.Density
	out.ClusterScale = f.ClusterScale
	out.Seed = f.Seed

	var err error
	if f.Topology != "" {
		if out.Topology, err = forest.ParseTopology(f.Topology); err != nil {
			return out, err
		}
	}
	if f.Burnout != "" {
		if out.Burnout, err = forest.ParseBurnout(f.Burnout); err != nil {
			return out, err
		}
	}
	if f.Init != "" {
		if out.Init, err = forest.ParseInitMode(f.Init); err != nil {
			return out, err
		}
	}
	if err := out.Validate(); err != nil {
		return out, err
	}
	return out, nil
}

// SweepOptions converts the sweep section. Progress is left for the caller.
func (c *Config) SweepOptions() forest.SweepOptions {
	s := c.Sweep
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return forest.SweepOptions{
		From:     s.From,
		To:       s.To,
		Step:     s.Step,
		Trials:   s.Trials,
		Workers:  workers,
		Seed:     s.Seed,
		MaxTicks: s.MaxTicks,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
