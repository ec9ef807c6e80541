package session

import (
	"math"

	"game-of-life/internal/core"
)

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	pop := s.grid.Population()
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.generation),
				core.IntParam("population", "Population", pop),
				core.BoolParam("running", "Running", s.running),
			},
		},
		{
			Name: "Settings",
			Params: []core.Parameter{
				core.FloatParam("speed", "Speed (gen/s)", s.speed),
				core.IntParam("w", "Grid width", s.grid.Width()),
				core.IntParam("h", "Grid height", s.grid.Height()),
				core.FloatParam("density", "Random density", s.density),
				core.FloatParam("zoom", "Zoom", s.view.Zoom),
			},
		},
	}
	if s.stats.HasData() {
		st := core.ParameterGroup{Name: "Statistics"}
		if v, ok := s.stats.Max(); ok {
			st.Params = append(st.Params, core.IntParam("pop_max", "Max population", v))
		}
		if v, ok := s.stats.Min(); ok {
			st.Params = append(st.Params, core.IntParam("pop_min", "Min population", v))
		}
		if v, ok := s.stats.Average(); ok {
			st.Params = append(st.Params, core.FloatParam("pop_avg", "Average", v))
		}
		if dir, ok := s.stats.Trend(10); ok {
			st.Summary = trendLabel(dir)
		}
		groups = append(groups, st)
	}
	return core.ParameterSnapshot{Groups: groups}
}

func trendLabel(dir int) string {
	switch {
	case dir > 0:
		return "growing"
	case dir < 0:
		return "declining"
	}
	return "stable"
}

// ParameterControls lists the settings adjustable from the HUD.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "speed", Label: "Speed (gen/s)", Type: core.ParamTypeFloat, Step: 1, Min: MinSpeed, Max: MaxSpeed, HasMin: true, HasMax: true},
		{Key: "w", Label: "Grid width", Type: core.ParamTypeInt, Step: 10, Min: MinWidth, Max: MaxWidth, HasMin: true, HasMax: true},
		{Key: "h", Label: "Grid height", Type: core.ParamTypeInt, Step: 10, Min: MinHeight, Max: MaxHeight, HasMin: true, HasMax: true},
		{Key: "density", Label: "Random density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "zoom", Label: "Zoom", Type: core.ParamTypeFloat, Step: 0.1, Min: MinZoom, Max: MaxZoom, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD change to an integer setting. Changing a
// dimension rebuilds the grid.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "w":
		if value < MinWidth || value > MaxWidth {
			return false
		}
		s.Resize(value, s.grid.Height())
	case "h":
		if value < MinHeight || value > MaxHeight {
			return false
		}
		s.Resize(s.grid.Width(), value)
	default:
		return false
	}
	return true
}

// SetFloatParameter applies a HUD change to a floating point setting.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch key {
	case "speed":
		s.SetSpeed(value)
	case "density":
		s.SetDensity(value)
	case "zoom":
		s.SetZoom(value)
	default:
		return false
	}
	return true
}
