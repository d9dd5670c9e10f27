package control

import "fmt"

// Physical temperature limits of the box in °C.
const (
	PhysicalMinC     = 20.0
	PhysicalMaxC     = 100.0
	PhysicalDefaultC = 20.0
)

// LimitRange holds min/max/default values for a temperature parameter.
// Values are immutable; replace the whole range instead of editing it.
type LimitRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// NewLimitRange builds a range, rejecting min > max.
func NewLimitRange(min, max, def float64) (LimitRange, error) {
	if min > max {
		return LimitRange{}, fmt.Errorf("invalid limit range: min %.2f > max %.2f", min, max)
	}
	return LimitRange{Min: min, Max: max, Default: def}, nil
}

// PhysicalLimits returns the hard device limits.
func PhysicalLimits() LimitRange {
	return LimitRange{Min: PhysicalMinC, Max: PhysicalMaxC, Default: PhysicalDefaultC}
}

// Validate returns v when it lies in [Min, Max], otherwise Default.
func (l LimitRange) Validate(v float64) float64 {
	if v >= l.Min && v <= l.Max {
		return v
	}
	return l.Default
}

// Contains reports whether v survives Validate unchanged.
func (l LimitRange) Contains(v float64) bool {
	return l.Validate(v) == v
}
