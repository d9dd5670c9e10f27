package models

import "time"

// Event types.
const (
	EventSetpoints    = "SETPOINTS"
	EventTargetSwitch = "TARGET_SWITCH"
	EventCompensation = "COMPENSATION"
	EventError        = "ERROR"
)

// BoxEvent is a single log entry.
type BoxEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // SETPOINTS | TARGET_SWITCH | COMPENSATION | ERROR
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
