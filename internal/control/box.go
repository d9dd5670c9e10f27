// Package control implements the isolated box regulator: limit validation,
// two-point target selection with a hysteresis tie-break, and the PWM
// actuator it drives.
package control

// UndefinedTemp is returned when no compensation applies.
const UndefinedTemp = 65535.0

// DefaultCompensationThreshold is the default compensation threshold in °C.
const DefaultCompensationThreshold = 0.1

// Option configures a BoxController.
type Option func(*boxOptions)

type boxOptions struct {
	strategy CompensationStrategy
	limits   ActuatorLimits
}

// WithStrategy installs the actuation strategy used on compensation.
func WithStrategy(s CompensationStrategy) Option {
	return func(o *boxOptions) { o.strategy = s }
}

// WithActuatorLimits overrides the actuator bounds.
func WithActuatorLimits(l ActuatorLimits) Option {
	return func(o *boxOptions) { o.limits = l }
}

// BoxController is the entry point for regulating a box: configure the
// setpoints once with Init, then feed measurements to ApplyCompensation.
//
// Not safe for concurrent use.
type BoxController struct {
	setpoints   *SetpointController
	lastTemp    float64
	threshold   float64
	initialized bool
}

// NewBoxController returns an uninitialized controller.
func NewBoxController(opts ...Option) *BoxController {
	o := boxOptions{strategy: NopStrategy{}, limits: DefaultActuatorLimits()}
	for _, opt := range opts {
		opt(&o)
	}
	return &BoxController{
		setpoints: NewSetpointController(NewActuatorWithLimits(o.limits), o.strategy),
		lastTemp:  UndefinedTemp,
		threshold: DefaultCompensationThreshold,
	}
}

// Init configures the setpoints. max must be above min; otherwise nothing
// changes. Once a call succeeds the controller stays initialized.
func (b *BoxController) Init(min, max float64) bool {
	if max <= min {
		return false
	}
	ok := b.setpoints.Configure(min, max)
	if ok {
		b.initialized = true
	}
	return ok
}

// ApplyCompensation evaluates a measured temperature. It returns the active
// target when the box is out of its band, UndefinedTemp otherwise or before
// a successful Init.
func (b *BoxController) ApplyCompensation(temp float64) float64 {
	if !b.initialized {
		return UndefinedTemp
	}
	b.lastTemp = temp
	if b.setpoints.IsInRange(temp) {
		return UndefinedTemp
	}
	if p := b.setpoints.SelectTargetPoint(temp); p != NoChange {
		b.setpoints.SwitchTarget(p)
	}
	b.setpoints.Process(b.lastTemp)
	return b.setpoints.TargetPoint()
}

func (b *BoxController) SetPoint(p Point) float64       { return b.setpoints.SetPoint(p) }
func (b *BoxController) SetTargetPoint(p Point) float64 { return b.setpoints.SetTargetPoint(p) }
func (b *BoxController) TargetPoint() float64           { return b.setpoints.TargetPoint() }
func (b *BoxController) Initialized() bool              { return b.initialized }
func (b *BoxController) LastTemp() float64              { return b.lastTemp }
func (b *BoxController) CompensationThreshold() float64 { return b.threshold }
func (b *BoxController) Actuator() ActuatorState        { return b.setpoints.Actuator() }

// ActivePoint reports which setpoint is the current target, or NoChange
// when none is configured.
func (b *BoxController) ActivePoint() Point {
	t := b.setpoints.TargetPoint()
	if t == SetpointUnavailable {
		return NoChange
	}
	for p := MinPoint; p < NumPoints; p++ {
		if b.setpoints.SetPoint(p) == t {
			return p
		}
	}
	return NoChange
}

func (b *BoxController) PhysicalLimits() LimitRange { return b.setpoints.PhysicalLimits() }

// ApplicationLimits returns the band currently considered in range.
func (b *BoxController) ApplicationLimits() LimitRange { return b.setpoints.ApplicationLimits() }

// SelectTargetPoint exposes the tie-break decision without mutating anything.
func (b *BoxController) SelectTargetPoint(temp float64) Point {
	return b.setpoints.SelectTargetPoint(temp)
}
