package ui

import (
	"math"
	"strconv"

	"game-of-life/internal/core"
)

// formatValue renders a control value with as many decimals as its step
// needs.
func formatValue(c core.ParameterControl, v float64) string {
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch {
	case c.Step <= 0 || c.Step < 0.01:
		precision = 3
	case c.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
