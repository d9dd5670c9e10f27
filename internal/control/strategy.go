package control

import "time"

// Command is what a CompensationStrategy asks the actuator to do.
type Command struct {
	Intensity uint8
	// Hold is how long the command should be kept before the next step.
	Hold time.Duration
}

// CompensationStrategy computes an actuation command for the current
// temperature and the active target point. The PID transfer function lives
// behind this interface.
type CompensationStrategy interface {
	Step(current, target float64) Command
}

// StrategyFunc adapts a function to CompensationStrategy.
type StrategyFunc func(current, target float64) Command

func (f StrategyFunc) Step(current, target float64) Command { return f(current, target) }

// NopStrategy leaves the actuator alone.
type NopStrategy struct{}

func (NopStrategy) Step(float64, float64) Command { return Command{} }

// OnOff drives the actuator at a fixed intensity whenever a compensation step
// runs. Together with the two-point selector it gives bang-bang control.
type OnOff struct {
	Intensity uint8
	Hold      time.Duration
}

func (s OnOff) Step(float64, float64) Command {
	return Command{Intensity: s.Intensity, Hold: s.Hold}
}
