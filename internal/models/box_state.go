package models

import "time"

// BoxState is the current snapshot of the isolated box regulator.
type BoxState struct {
	ID           int       `json:"id"`
	Initialized  bool      `json:"initialized"`
	MinSetPointC float64   `json:"min_set_point_c"`
	MaxSetPointC float64   `json:"max_set_point_c"`
	TargetC      float64   `json:"target_c"`
	LastTempC    float64   `json:"last_temp_c"`
	Compensating bool      `json:"compensating"` // last reading was out of band
	Actuator     Actuator  `json:"actuator"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actuator mirrors the PWM actuator state.
type Actuator struct {
	Enabled   bool   `json:"enabled"`
	Intensity uint8  `json:"intensity"`
	Frequency uint32 `json:"frequency"`
	DutyCycle uint8  `json:"duty_cycle"`
}
