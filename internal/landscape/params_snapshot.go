package landscape

import (
	"strconv"

	"cubescape/internal/core"
)

// Parameters reports the world settings and the current frame for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	stats := Summarize(w.columns)
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				floatParam("cube_width", "Cube width", w.cfg.CubeWidth),
				intParam("cube_amount", "Cube amount", w.cfg.CubeAmount),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				intParam("octaves", "Octaves", w.cfg.Noise.Octaves),
				floatParam("falloff", "Falloff", w.cfg.Noise.Falloff),
			},
		},
		{
			Name: "Colors",
			Params: []core.Parameter{
				stringParam("palette", "Palette", w.palette.Name),
				floatParam("color_offset", "Color offset", w.cfg.ColorOffset),
			},
		},
		{
			Name: "Frame",
			Params: []core.Parameter{
				{Key: "frame", Label: "Frame", Type: core.ParamTypeInt, Value: strconv.FormatUint(w.frame, 10)},
				floatParam("mean_height", "Mean height", stats.MeanHeight),
				floatParam("max_scale", "Max scale", stats.MaxScale),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
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
		Value: strconv.FormatFloat(value, 'f', 3, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
