package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"isolated_box/internal/control"
	"isolated_box/internal/models"
)

func TestMonitoringService_GetState(t *testing.T) {
	t.Parallel()

	stored := models.BoxState{
		ID:           1,
		Initialized:  true,
		MinSetPointC: 25,
		MaxSetPointC: 50,
		TargetC:      50,
		LastTempC:    51,
		UpdatedAt:    time.Date(2025, 1, 1, 12, 0, 0, 0, time.FixedZone("X", 3600)),
	}

	cases := []struct {
		name  string
		repo  *memStateRepo
		check func(t *testing.T, got models.BoxState, err error)
	}{
		{
			name: "propagates repository error",
			repo: &memStateRepo{loadErr: errors.New("db down")},
			check: func(t *testing.T, got models.BoxState, err error) {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
			},
		},
		{
			name: "baseline when nothing stored",
			repo: &memStateRepo{},
			check: func(t *testing.T, got models.BoxState, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.ID != 1 || got.Initialized {
					t.Fatalf("baseline: %+v", got)
				}
				if got.MinSetPointC != control.SetpointUnavailable || got.TargetC != control.SetpointUnavailable ||
					got.LastTempC != control.UndefinedTemp {
					t.Fatalf("baseline sentinels: %+v", got)
				}
				if got.UpdatedAt.Location() != time.UTC {
					t.Fatalf("baseline UpdatedAt not UTC")
				}
			},
		},
		{
			name: "stored state normalized to UTC",
			repo: &memStateRepo{state: stored},
			check: func(t *testing.T, got models.BoxState, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.TargetC != 50 || !got.UpdatedAt.Equal(stored.UpdatedAt) || got.UpdatedAt.Location() != time.UTC {
					t.Fatalf("state: %+v", got)
				}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewMonitoringService(tc.repo).GetState(context.Background())
			tc.check(t, got, err)
		})
	}
}
