package forest

import (
	"strconv"

	"forest-ca/internal/core"
)

// Parameters describes the configuration for the HUD and for run logs.
func (s *Sim) Parameters() core.ParameterSnapshot {
	cfg := s.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", cfg.Rows),
				intParam("cols", "Columns", cfg.Cols),
				enumParam("topology", "Topology", cfg.Topology.String()),
				int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name: "Forest",
			Params: []core.Parameter{
				enumParam("init", "Initial layout", cfg.Init.String()),
				intParam("density", "Density %", cfg.Density),
				floatParam("growth", "Growth chance", cfg.GrowthChance),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("ignition", "Ignition chance", cfg.IgnitionChance),
				intParam("persistence", "Persistence", cfg.Persistence),
				enumParam("burnout", "Burnout", cfg.Burnout.String()),
				boolParam("decay_contagious", "Smoulder spreads", cfg.DecayContagious),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// Status reports live counters.
func (s *Sim) Status() []core.Parameter {
	st := s.Census()
	return []core.Parameter{
		intParam("tick", "Tick", s.tick),
		intParam("trees", "Trees", st.Tree),
		intParam("fires", "Burning", st.Fire),
		intParam("burnt", "Burnt", st.Burnt),
		floatParam("burnt_fraction", "Burnt fraction", st.BurntFraction()),
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'g', 4, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func enumParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeEnum, Value: value}
}
