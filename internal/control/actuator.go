package control

// PWM bounds. Frequency and duty cycle bounds are exclusive.
const (
	PWMFrequencyMin     uint32 = 0
	PWMFrequencyMax     uint32 = 12345
	PWMFrequencyDefault uint32 = 100

	PWMDutyCycleMin     uint8 = 0
	PWMDutyCycleMax     uint8 = 100
	PWMDutyCycleDefault uint8 = 0

	PWMIntensityMax uint8 = 100
)

// EquipmentState is the on/off state of a piece of equipment.
type EquipmentState int

const (
	Disabled EquipmentState = iota
	Enabled
)

func (s EquipmentState) String() string {
	if s == Enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// ActuatorLimits groups the bounds an Actuator checks against.
type ActuatorLimits struct {
	FrequencyMin     uint32
	FrequencyMax     uint32
	FrequencyDefault uint32
	DutyCycleMin     uint8
	DutyCycleMax     uint8
	DutyCycleDefault uint8
	IntensityMax     uint8
}

// DefaultActuatorLimits returns the stock PWM bounds.
func DefaultActuatorLimits() ActuatorLimits {
	return ActuatorLimits{
		FrequencyMin:     PWMFrequencyMin,
		FrequencyMax:     PWMFrequencyMax,
		FrequencyDefault: PWMFrequencyDefault,
		DutyCycleMin:     PWMDutyCycleMin,
		DutyCycleMax:     PWMDutyCycleMax,
		DutyCycleDefault: PWMDutyCycleDefault,
		IntensityMax:     PWMIntensityMax,
	}
}

// ActuatorState is a point-in-time copy of an Actuator.
type ActuatorState struct {
	State     EquipmentState `json:"-"`
	Enabled   bool           `json:"enabled"`
	Intensity uint8          `json:"intensity"`
	Frequency uint32         `json:"frequency"`
	DutyCycle uint8          `json:"duty_cycle"`
}

// Actuator models a PWM driven device. Setters reject out of bound values and
// leave the state untouched; intensity steps saturate.
//
// Not safe for concurrent use.
type Actuator struct {
	limits    ActuatorLimits
	state     EquipmentState
	intensity uint8
	frequency uint32
	dutyCycle uint8
}

// NewActuator returns a disabled actuator using DefaultActuatorLimits.
func NewActuator() *Actuator {
	return NewActuatorWithLimits(DefaultActuatorLimits())
}

// NewActuatorWithLimits returns a disabled actuator checking against l.
func NewActuatorWithLimits(l ActuatorLimits) *Actuator {
	return &Actuator{limits: l, state: Disabled}
}

// Init applies the default frequency and duty cycle. When both are accepted the
// actuator is zeroed and enabled.
func (a *Actuator) Init() bool {
	if !a.SetFrequency(a.limits.FrequencyDefault) || !a.SetDutyCycle(a.limits.DutyCycleDefault) {
		return false
	}
	a.state = Enabled
	a.dutyCycle = 0
	a.frequency = 0
	a.intensity = 0
	return true
}

// Disable switches the actuator off.
func (a *Actuator) Disable() { a.state = Disabled }

// Increment raises intensity by one step unless already at the ceiling.
func (a *Actuator) Increment() {
	if a.intensity < a.limits.IntensityMax {
		a.intensity++
	}
}

// IncrementBy raises intensity by n, saturating at the ceiling.
func (a *Actuator) IncrementBy(n uint8) {
	next := int(a.intensity) + int(n)
	if next > int(a.limits.IntensityMax) {
		next = int(a.limits.IntensityMax)
	}
	a.intensity = uint8(next)
}

// Decrement lowers intensity by one step while it is above zero.
func (a *Actuator) Decrement() {
	if a.intensity > 0 {
		a.intensity--
	}
}

// DecrementBy lowers intensity by n, saturating at zero.
func (a *Actuator) DecrementBy(n uint8) {
	if a.intensity == 0 {
		return
	}
	if n >= a.intensity {
		a.intensity = 0
		return
	}
	a.intensity -= n
}

// SetIntensity accepts 0..IntensityMax.
func (a *Actuator) SetIntensity(v uint8) bool {
	if v > a.limits.IntensityMax {
		return false
	}
	a.intensity = v
	return true
}

// SetFrequency accepts values strictly between the frequency bounds.
func (a *Actuator) SetFrequency(v uint32) bool {
	if v <= a.limits.FrequencyMin || v >= a.limits.FrequencyMax {
		return false
	}
	a.frequency = v
	return true
}

// SetDutyCycle accepts values strictly between the duty cycle bounds.
func (a *Actuator) SetDutyCycle(v uint8) bool {
	if v <= a.limits.DutyCycleMin || v >= a.limits.DutyCycleMax {
		return false
	}
	a.dutyCycle = v
	return true
}

func (a *Actuator) Intensity() uint8       { return a.intensity }
func (a *Actuator) Frequency() uint32      { return a.frequency }
func (a *Actuator) DutyCycle() uint8       { return a.dutyCycle }
func (a *Actuator) State() EquipmentState  { return a.state }
func (a *Actuator) Enabled() bool          { return a.state == Enabled }
func (a *Actuator) Limits() ActuatorLimits { return a.limits }

// Snapshot copies the current actuator state.
func (a *Actuator) Snapshot() ActuatorState {
	return ActuatorState{
		State:     a.state,
		Enabled:   a.state == Enabled,
		Intensity: a.intensity,
		Frequency: a.frequency,
		DutyCycle: a.dutyCycle,
	}
}
