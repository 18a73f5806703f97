package ui

import (
	"math"
	"strconv"

	"nightsky/internal/core"
)

// stepTarget returns the value one step away from current in direction,
// clamped to the control's bounds. ok is false when the control cannot move
// that way.
func stepTarget(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return current, false
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

// formatFloat picks a precision from the control's step size.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// HelpLines lists the hotkeys shown by the help overlay.
func HelpLines() []string {
	return []string{
		"Esc        quit",
		"F1 F2 F3   constellation / planet / satellite names",
		"F4 - F7    dawn, midday, dusk, night",
		"F8 F9      fall, spring",
		"F10 F11    summer, winter",
		"A          alien world",
		"F12        native names",
		"B / D      regenerate bottom / distant terrain",
		"Mouse L/R  raise / dig terrain",
		"1 / 2      physics boundary / skyline overlay",
		"Tab        parameter panel",
		"H          this help",
	}
}
