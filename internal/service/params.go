package service

import (
	"time"

	"isolated_box/internal/control"
	"isolated_box/internal/models"
)

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", SETPOINTS, TARGET_SWITCH, COMPENSATION, ERROR
}

// Setpoints describes the configured band.
type Setpoints struct {
	Initialized bool               `json:"initialized"`
	MinC        float64            `json:"min_c"`
	MaxC        float64            `json:"max_c"`
	TargetC     float64            `json:"target_c"`
	Target      string             `json:"target"`
	Physical    control.LimitRange `json:"physical"`
	Application control.LimitRange `json:"application"`
}

// Decision is the outcome of compensating one reading. TargetC is
// control.UndefinedTemp when the reading is inside the band.
type Decision struct {
	TempC        float64         `json:"temp_c"`
	TargetC      float64         `json:"target_c"`
	Point        string          `json:"point,omitempty"`
	Compensating bool            `json:"compensating"`
	Switched     bool            `json:"switched"`
	Actuator     models.Actuator `json:"actuator"`
}
