package core

// SpeedControl bounds the speed setting. Speed is an inter-frame delay
// multiplier: higher values run slower.
type SpeedControl struct {
	Min int
	Max int
}

// Clamp limits v to [Min, Max].
func (s SpeedControl) Clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Slower returns the next slower speed within bounds.
func (s SpeedControl) Slower(v int) int { return s.Clamp(v + 1) }

// Faster returns the next faster speed within bounds.
func (s SpeedControl) Faster(v int) int { return s.Clamp(v - 1) }
