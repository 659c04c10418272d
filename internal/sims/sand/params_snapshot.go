package sand

import (
	"strconv"

	"sandbox/internal/core"
)

// Parameters reports the brush state, run settings and per-material counts.
func (s *Sim) Parameters() core.ParameterSnapshot {
	counts := s.Counts()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.w),
				intParam("h", "Height", s.h),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.cfg.Seed, 10)},
				{Key: "floor", Label: "Floor", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.cfg.Floor)},
				intParam("ticks", "Ticks", s.ticks),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				{Key: "paint_material", Label: "Material", Type: core.ParamTypeEnum, Value: strconv.Itoa(int(s.material)), Display: s.material.String()},
				intParam("brush_radius", "Radius", s.radius),
				intParam("steps_per_frame", "Steps/frame", s.cfg.StepsPerFrame),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("count_sand", "Sand", counts.Of(Sand)),
				intParam("count_water", "Water", counts.Of(Water)),
				intParam("count_wall", "Wall", counts.Of(Wall)),
			},
		},
	}}
}

// ParameterControls lists the values a HUD may adjust.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "paint_material", Label: "Material", Type: core.ParamTypeEnum, Step: 1, Min: int(Empty), Max: int(Wall)},
		{Key: "brush_radius", Label: "Radius", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: MaxBrushRadius},
		{Key: "steps_per_frame", Label: "Steps/frame", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 16},
	}
}

// SetIntParameter applies a HUD adjustment. Unknown keys and out-of-range
// material tags are rejected.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "paint_material":
		if value < 0 || value >= int(materialCount) {
			return false
		}
		s.material = Material(value)
	case "brush_radius":
		s.SetBrushRadius(value)
	case "steps_per_frame":
		if value < 1 {
			value = 1
		}
		s.cfg.StepsPerFrame = value
	default:
		return false
	}
	return true
}

// StepsPerFrame reports how many ticks a driver should run per frame.
func (s *Sim) StepsPerFrame() int {
	if s.cfg.StepsPerFrame < 1 {
		return 1
	}
	return s.cfg.StepsPerFrame
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}
