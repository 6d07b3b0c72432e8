package canvas

import (
	"strconv"

	"marching-squares/internal/core"
)

// Parameters reports the live tunables grouped for the HUD.
func (s *State) Parameters() core.ParameterSnapshot {
	minR, maxR := s.kernel.Bounds()
	w, h := s.field.W, s.field.H
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("w", "Samples across", w),
				intParam("h", "Samples down", h),
				floatParam("tile", "Tile", s.tile),
				stringParam("mode", "Mode", s.mode.String()),
			},
		},
		{
			Name: "Contour",
			Params: []core.Parameter{
				floatParam("threshold", "Threshold", s.tess.Threshold()),
				intParam("rebuilds", "Rebuilds", s.tess.Rebuilds()),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				floatParam("radius", "Radius", s.kernel.Radius()),
				floatParam("min_radius", "Radius min", minR),
				floatParam("max_radius", "Radius max", maxR),
				floatParam("fill_time", "Fill time", s.brush.FillTime),
				floatParam("erase_time", "Erase time", s.brush.EraseTime),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *State) ParameterControls() []core.ParameterControl {
	minR, maxR := s.kernel.Bounds()
	return []core.ParameterControl{
		{Key: "threshold", Label: "Threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "radius", Label: "Radius", Type: core.ParamTypeFloat, Step: 5, Min: minR, Max: maxR, HasMin: true, HasMax: true},
		{Key: "fill_time", Label: "Fill time", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 10, HasMin: true, HasMax: true},
		{Key: "erase_time", Label: "Erase time", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a tunable by key and reports whether it exists.
func (s *State) SetFloatParameter(key string, value float64) bool {
	if !finite(value) {
		return false
	}
	switch key {
	case "threshold":
		s.SetThreshold(value)
	case "radius":
		s.SetRadius(value)
	case "fill_time":
		if value <= 0 {
			return false
		}
		s.brush.FillTime = value
	case "erase_time":
		if value <= 0 {
			return false
		}
		s.brush.EraseTime = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
