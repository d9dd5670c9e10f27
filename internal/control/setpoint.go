package control

import (
	"math"
	"strings"
	"time"
)

// Point indexes the setpoint array.
type Point int

const (
	MinPoint Point = iota
	MaxPoint
	NumPoints

	// NoChange is returned by SelectTargetPoint when the active target must stay.
	NoChange = NumPoints
)

// SetpointUnavailable marks a setpoint that has not been (validly) configured.
const SetpointUnavailable = 65535.0

func (p Point) String() string {
	switch p {
	case MinPoint:
		return "MIN"
	case MaxPoint:
		return "MAX"
	case NoChange:
		return "NO_CHANGE"
	default:
		return "INVALID"
	}
}

// Valid reports whether p addresses a setpoint.
func (p Point) Valid() bool { return p >= 0 && p < NumPoints }

// ParsePoint maps "MIN"/"MAX" (any case) to a Point.
func ParsePoint(s string) (Point, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MIN":
		return MinPoint, true
	case "MAX":
		return MaxPoint, true
	}
	return NoChange, false
}

// SetpointController owns the two setpoints and decides which one is the
// active target.
//
// Not safe for concurrent use.
type SetpointController struct {
	physical    LimitRange
	application LimitRange
	setpoints   [NumPoints]float64
	target      float64

	actuator *Actuator
	strategy CompensationStrategy
}

// NewSetpointController builds a controller with unavailable setpoints and
// initializes the actuator.
func NewSetpointController(act *Actuator, strategy CompensationStrategy) *SetpointController {
	if act == nil {
		act = NewActuator()
	}
	if strategy == nil {
		strategy = NopStrategy{}
	}
	c := &SetpointController{
		physical:    PhysicalLimits(),
		application: PhysicalLimits(),
		target:      SetpointUnavailable,
		actuator:    act,
		strategy:    strategy,
	}
	c.setpoints[MinPoint] = SetpointUnavailable
	c.setpoints[MaxPoint] = SetpointUnavailable
	c.actuator.Init()
	return c
}

// Configure stores min/max when max > min and both lie within the physical
// limits. The target resets to min. On failure setpoints become unavailable
// and the application limits fall back to the physical ones.
func (c *SetpointController) Configure(min, max float64) bool {
	if max > min && c.physical.Contains(min) && c.physical.Contains(max) {
		if app, err := NewLimitRange(min, max, min); err == nil {
			c.setpoints[MinPoint] = min
			c.setpoints[MaxPoint] = max
			c.target = min
			c.application = app
			return true
		}
	}
	c.setpoints[MinPoint] = SetpointUnavailable
	c.setpoints[MaxPoint] = SetpointUnavailable
	c.target = SetpointUnavailable
	c.application = c.physical
	return false
}

// IsInRange reports whether t lies inside the application limits.
func (c *SetpointController) IsInRange(t float64) bool {
	return c.application.Contains(t)
}

// SelectTargetPoint picks the setpoint closest to t. Equidistant readings
// return NoChange so the active target does not flip.
func (c *SetpointController) SelectTargetPoint(t float64) Point {
	distMin := math.Abs(t - c.setpoints[MinPoint])
	distMax := math.Abs(t - c.setpoints[MaxPoint])
	switch {
	case distMin < distMax:
		return MinPoint
	case distMax < distMin:
		return MaxPoint
	default:
		return NoChange
	}
}

// SwitchTarget makes setpoint p the active target. NoChange is a no-op.
func (c *SetpointController) SwitchTarget(p Point) {
	if p.Valid() {
		c.target = c.setpoints[p]
	}
}

// SetPoint returns setpoint p, or SetpointUnavailable for a bad index.
func (c *SetpointController) SetPoint(p Point) float64 {
	if !p.Valid() {
		return SetpointUnavailable
	}
	return c.setpoints[p]
}

// SetTargetPoint activates setpoint p and returns it. A bad index returns
// SetpointUnavailable and changes nothing.
func (c *SetpointController) SetTargetPoint(p Point) float64 {
	if !p.Valid() {
		return SetpointUnavailable
	}
	c.target = c.setpoints[p]
	return c.target
}

func (c *SetpointController) TargetPoint() float64 { return c.target }

func (c *SetpointController) PhysicalLimits() LimitRange    { return c.physical }
func (c *SetpointController) ApplicationLimits() LimitRange { return c.application }

// Process runs one strategy step toward the active target and drives the
// actuator when it is enabled.
func (c *SetpointController) Process(current float64) time.Duration {
	cmd := c.strategy.Step(current, c.target)
	if c.actuator.Enabled() && cmd.Intensity != c.actuator.Intensity() {
		c.actuator.SetIntensity(cmd.Intensity)
	}
	return cmd.Hold
}

// Actuator returns a snapshot of the driven actuator.
func (c *SetpointController) Actuator() ActuatorState { return c.actuator.Snapshot() }
