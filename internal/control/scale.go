package control

import (
	"errors"
	"strings"
)

// Scale is a temperature scale.
type Scale int

const (
	Celsius Scale = iota
	Fahrenheit
	Kelvin
)

// ErrUnknownScale is returned for unit labels that are not a known scale.
var ErrUnknownScale = errors.New("unknown temperature scale")

func (s Scale) String() string {
	switch s {
	case Celsius:
		return "C"
	case Fahrenheit:
		return "F"
	case Kelvin:
		return "K"
	default:
		return "?"
	}
}

// ParseScale maps a unit label ("C", "°F", "kelvin", ...) to a Scale.
func ParseScale(unit string) (Scale, error) {
	u := strings.ToUpper(strings.TrimSpace(unit))
	u = strings.TrimPrefix(u, "°")
	u = strings.TrimPrefix(u, "DEG")
	switch u {
	case "C", "CELSIUS":
		return Celsius, nil
	case "F", "FAHRENHEIT", "FARENHEIT":
		return Fahrenheit, nil
	case "K", "KELVIN":
		return Kelvin, nil
	}
	return Celsius, ErrUnknownScale
}

// ToCelsius converts v expressed in s to °C.
func ToCelsius(v float64, s Scale) float64 {
	switch s {
	case Fahrenheit:
		return (v - 32) * 5 / 9
	case Kelvin:
		return v - 273.15
	default:
		return v
	}
}

// FromCelsius converts c in °C to scale s.
func FromCelsius(c float64, s Scale) float64 {
	switch s {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273.15
	default:
		return c
	}
}
