package engine

import "fmt"

// ValueOutOfRangeError reports a --set value outside the active mode's range.
type ValueOutOfRangeError struct {
	Min, Max, Value uint32
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("backlight value is out of range - min: %d, max: %d, value: %d",
		e.Min, e.Max, e.Value)
}

// StepParameterOutOfRangeError reports a --steps count outside [1, hwMax].
type StepParameterOutOfRangeError struct {
	Max, Value uint32
}

func (e *StepParameterOutOfRangeError) Error() string {
	return fmt.Sprintf("steps parameter is out of range - min: 0, max: %d, steps value: %d",
		e.Max, e.Value)
}
