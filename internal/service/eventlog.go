package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"isolated_box/internal/models"
	"isolated_box/internal/repository"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var (
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrUnknownEventType = errors.New("unknown event type")
)

var knownEventTypes = map[string]struct{}{
	models.EventSetpoints:    {},
	models.EventTargetSwitch: {},
	models.EventCompensation: {},
	models.EventError:        {},
}

// normalizeFilter converts the bounds to UTC, upper-cases the type and
// rejects inverted ranges and unknown types.
func normalizeFilter(f LogFilter) (LogFilter, error) {
	out := LogFilter{
		From: toUTC(f.From),
		To:   toUTC(f.To),
		Type: strings.ToUpper(strings.TrimSpace(f.Type)),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return LogFilter{}, ErrInvalidTimeRange
	}
	if out.Type != "" {
		if _, ok := knownEventTypes[out.Type]; !ok {
			return LogFilter{}, fmt.Errorf("%q: %w", f.Type, ErrUnknownEventType)
		}
	}
	return out, nil
}

// List returns the events matching f, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.BoxEvent, error) {
	nf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, nf.From, nf.To, nf.Type)
}
