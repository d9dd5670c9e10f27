package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActuator_FrequencyStrictBounds(t *testing.T) {
	a := NewActuator()

	assert.False(t, a.SetFrequency(0))
	assert.False(t, a.SetFrequency(12345))
	assert.Equal(t, uint32(0), a.Frequency())

	assert.True(t, a.SetFrequency(100))
	assert.Equal(t, uint32(100), a.Frequency())

	assert.False(t, a.SetFrequency(20000))
	assert.Equal(t, uint32(100), a.Frequency(), "failed set must not change state")
}

func TestActuator_DutyCycleStrictBounds(t *testing.T) {
	a := NewActuator()

	assert.False(t, a.SetDutyCycle(0))
	assert.False(t, a.SetDutyCycle(100))
	assert.True(t, a.SetDutyCycle(50))
	assert.Equal(t, uint8(50), a.DutyCycle())
}

func TestActuator_InitWithStockLimitsFails(t *testing.T) {
	// The stock default duty cycle (0) is outside the exclusive bounds.
	a := NewActuator()
	assert.False(t, a.Init())
	assert.Equal(t, Disabled, a.State())
}

func TestActuator_InitResetsAndEnables(t *testing.T) {
	l := DefaultActuatorLimits()
	l.DutyCycleDefault = 50
	a := NewActuatorWithLimits(l)
	require.True(t, a.SetIntensity(42))

	require.True(t, a.Init())
	assert.Equal(t, Enabled, a.State())
	assert.True(t, a.Enabled())
	assert.Equal(t, uint8(0), a.Intensity())
	assert.Equal(t, uint32(0), a.Frequency())
	assert.Equal(t, uint8(0), a.DutyCycle())

	a.Disable()
	assert.Equal(t, Disabled, a.State())
	assert.Equal(t, "DISABLED", a.State().String())
}

func TestActuator_IntensitySaturates(t *testing.T) {
	a := NewActuator()

	assert.False(t, a.SetIntensity(101))
	assert.True(t, a.SetIntensity(99))

	a.Increment()
	assert.Equal(t, uint8(100), a.Intensity())
	a.Increment()
	assert.Equal(t, uint8(100), a.Intensity())

	require.True(t, a.SetIntensity(95))
	a.IncrementBy(10)
	assert.Equal(t, uint8(100), a.Intensity())

	a.DecrementBy(30)
	assert.Equal(t, uint8(70), a.Intensity())

	a.DecrementBy(200)
	assert.Equal(t, uint8(0), a.Intensity())

	a.Decrement()
	assert.Equal(t, uint8(0), a.Intensity())

	a.IncrementBy(3)
	a.Decrement()
	assert.Equal(t, uint8(2), a.Intensity())
}
