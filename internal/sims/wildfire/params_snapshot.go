package wildfire

import (
	"strconv"

	"fuego-ca/internal/core"
)

// Parameters captures the current tunables for display on the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Wind",
			Params: []core.Parameter{
				floatParam("wind_direction", "Wind direction (deg)", params.WindDirectionDeg),
				floatParam("wind_speed", "Wind speed (km/h)", params.WindSpeedKmh),
			},
		},
		{
			Name: "Spread",
			Params: []core.Parameter{
				floatParam("spread_aligned_base", "Aligned base", params.Spread.AlignedBase),
				floatParam("spread_aligned_slope", "Aligned slope coeff", params.Spread.AlignedSlope),
				floatParam("spread_aligned_wind", "Aligned wind coeff", params.Spread.AlignedWind),
				floatParam("spread_base", "Base", params.Spread.Base),
				floatParam("spread_slope", "Slope coeff", params.Spread.Slope),
				floatParam("spread_wind", "Wind coeff", params.Spread.Wind),
				intParam("search_radius", "Fuel search radius", params.SearchRadius),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "wind_direction", Label: "Wind direction", Type: core.ParamTypeFloat, Step: 15, Min: 0, Max: 360, HasMin: true, HasMax: true},
		{Key: "wind_speed", Label: "Wind speed", Type: core.ParamTypeFloat, Step: 1, Min: 0, HasMin: true},
		{Key: "spread_aligned_base", Label: "Aligned base", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "spread_base", Label: "Base", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "search_radius", Label: "Fuel search radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 16, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable by key, clamping to its valid
// range. It reports whether the key was recognized.
func (w *World) SetFloatParameter(key string, value float64) bool {
	clamp01 := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	switch key {
	case "wind_direction":
		w.SetWind(value, w.cfg.Params.WindSpeedKmh)
	case "wind_speed":
		w.SetWind(w.cfg.Params.WindDirectionDeg, value)
	case "spread_aligned_base":
		w.cfg.Params.Spread.AlignedBase = clamp01(value)
	case "spread_aligned_slope":
		w.cfg.Params.Spread.AlignedSlope = clamp01(value)
	case "spread_aligned_wind":
		w.cfg.Params.Spread.AlignedWind = clamp01(value)
	case "spread_base":
		w.cfg.Params.Spread.Base = clamp01(value)
	case "spread_slope":
		w.cfg.Params.Spread.Slope = clamp01(value)
	case "spread_wind":
		w.cfg.Params.Spread.Wind = clamp01(value)
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable by key. It reports whether the
// key was recognized.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "search_radius":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.SearchRadius = value
	default:
		return false
	}
	return true
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
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
