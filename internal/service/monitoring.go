package service

import (
	"context"
	"time"

	"isolated_box/internal/control"
	"isolated_box/internal/models"
	"isolated_box/internal/repository"
)

type MonitoringService struct {
	stateRepo repository.StateRepo
}

func NewMonitoringService(stateRepo repository.StateRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo}
}

// GetState returns the latest persisted box state, or an unconfigured
// baseline when nothing has been stored yet.
func (s *MonitoringService) GetState(ctx context.Context) (models.BoxState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.BoxState{}, err
	}
	if state.ID == 0 {
		return baselineState(), nil
	}
	state.UpdatedAt = toUTC(state.UpdatedAt)
	return state, nil
}

// baselineState mirrors a freshly constructed regulator.
func baselineState() models.BoxState {
	return models.BoxState{
		ID:           1, // single-row table
		MinSetPointC: control.SetpointUnavailable,
		MaxSetPointC: control.SetpointUnavailable,
		TargetC:      control.SetpointUnavailable,
		LastTempC:    control.UndefinedTemp,
		UpdatedAt:    time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
