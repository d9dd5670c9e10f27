package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"isolated_box/internal/control"
	"isolated_box/internal/logger"
	"isolated_box/internal/metrics"
	"isolated_box/internal/models"
	"isolated_box/internal/pub"
	"isolated_box/internal/repository"
)

var (
	ErrInvalidSetpoints = errors.New("invalid setpoints: need min < max within physical limits")
	ErrInvalidPoint     = errors.New("invalid setpoint: must be MIN or MAX")
	ErrNotInitialized   = errors.New("box is not initialized: configure setpoints first")
)

// BoxService serializes access to the regulator core and records every
// decision in the state table and the event log.
type BoxService struct {
	mu           sync.Mutex
	box          *control.BoxController
	compensating bool

	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
	publisher pub.Publisher
	metrics   *metrics.Metric
	log       *logger.Logger
	now       func() time.Time
}

func NewBoxService(stateRepo repository.StateRepo, eventRepo repository.EventRepo, opts Options) *BoxService {
	limits := opts.ActuatorLimits
	if limits == (control.ActuatorLimits{}) {
		limits = control.DefaultActuatorLimits()
	}
	strategy := opts.Strategy
	if strategy == nil {
		strategy = control.NopStrategy{}
	}
	publisher := opts.Publisher
	if publisher == nil {
		publisher = pub.Nop{}
	}
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}

	return &BoxService{
		box:       control.NewBoxController(control.WithStrategy(strategy), control.WithActuatorLimits(limits)),
		stateRepo: stateRepo,
		eventRepo: eventRepo,
		publisher: publisher,
		metrics:   opts.Metrics,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Configure sets the MIN/MAX band. Rejected values are logged as an ERROR
// event and reported as ErrInvalidSetpoints.
func (s *BoxService) Configure(ctx context.Context, minC, maxC float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.box.Init(minC, maxC) {
		s.record(ctx, models.BoxEvent{
			OccurredAt:  now,
			Type:        models.EventError,
			Description: "Setpoints rejected",
			Metadata:    map[string]any{"min_c": minC, "max_c": maxC},
		})
		rejected := fmt.Errorf("min=%g max=%g: %w", minC, maxC, ErrInvalidSetpoints)
		// a rejected re-configure may have reset the band
		if err := s.persist(ctx, now); err != nil {
			return errors.Join(rejected, err)
		}
		return rejected
	}

	s.compensating = false
	if err := s.persist(ctx, now); err != nil {
		return err
	}
	s.record(ctx, models.BoxEvent{
		OccurredAt:  now,
		Type:        models.EventSetpoints,
		Description: fmt.Sprintf("Setpoints configured to [%g, %g]", minC, maxC),
		Metadata:    map[string]any{"min_c": minC, "max_c": maxC},
	})
	s.log.Infow("box_configured", "min_c", minC, "max_c", maxC)
	return nil
}

// Compensate feeds one Celsius reading to the regulator.
func (s *BoxService) Compensate(ctx context.Context, tempC float64) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := Decision{TempC: tempC, TargetC: control.UndefinedTemp}
	if !s.box.Initialized() {
		return d, ErrNotInitialized
	}

	before := s.box.ActivePoint()
	d.TargetC = s.box.ApplyCompensation(tempC)
	d.Compensating = d.TargetC != control.UndefinedTemp
	d.Actuator = toModelActuator(s.box.Actuator())
	s.compensating = d.Compensating

	now := s.now()
	if d.Compensating {
		after := s.box.ActivePoint()
		d.Point = after.String()
		d.Switched = after != before

		if d.Switched {
			s.record(ctx, models.BoxEvent{
				OccurredAt:  now,
				Type:        models.EventTargetSwitch,
				Description: fmt.Sprintf("Target switched %s -> %s", before, after),
				Metadata:    map[string]any{"from": before.String(), "to": after.String(), "target_c": d.TargetC},
			})
		}
		s.record(ctx, models.BoxEvent{
			OccurredAt:  now,
			Type:        models.EventCompensation,
			Description: fmt.Sprintf("%.2f°C out of band, driving toward %s", tempC, d.Point),
			Metadata:    map[string]any{"temp_c": tempC, "target_c": d.TargetC, "point": d.Point, "intensity": d.Actuator.Intensity},
		})
		if s.metrics != nil {
			s.metrics.Compensation(d.Point)
		}
	}

	if s.metrics != nil {
		s.metrics.Temperature(tempC)
		s.metrics.Target(s.box.TargetPoint())
		s.metrics.ActuatorIntensity(d.Actuator.Intensity)
	}
	return d, s.persist(ctx, now)
}

// SetTarget forces the active target to setpoint p.
func (s *BoxService) SetTarget(ctx context.Context, p control.Point) (float64, error) {
	if !p.Valid() {
		return control.SetpointUnavailable, ErrInvalidPoint
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.box.Initialized() {
		return control.SetpointUnavailable, ErrNotInitialized
	}

	before := s.box.ActivePoint()
	v := s.box.SetTargetPoint(p)
	now := s.now()
	if before != p {
		s.record(ctx, models.BoxEvent{
			OccurredAt:  now,
			Type:        models.EventTargetSwitch,
			Description: fmt.Sprintf("Target set to %s", p),
			Metadata:    map[string]any{"from": before.String(), "to": p.String(), "target_c": v},
		})
	}
	if s.metrics != nil {
		s.metrics.Target(v)
	}
	return v, s.persist(ctx, now)
}

func (s *BoxService) Setpoints() Setpoints {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Setpoints{
		Initialized: s.box.Initialized(),
		MinC:        s.box.SetPoint(control.MinPoint),
		MaxC:        s.box.SetPoint(control.MaxPoint),
		TargetC:     s.box.TargetPoint(),
		Target:      s.box.ActivePoint().String(),
		Physical:    s.box.PhysicalLimits(),
		Application: s.box.ApplicationLimits(),
	}
}

func (s *BoxService) Target() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.box.TargetPoint()
}

// Snapshot returns the live regulator state.
func (s *BoxService) Snapshot() models.BoxState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(s.now())
}

func (s *BoxService) snapshot(now time.Time) models.BoxState {
	return models.BoxState{
		ID:           1,
		Initialized:  s.box.Initialized(),
		MinSetPointC: s.box.SetPoint(control.MinPoint),
		MaxSetPointC: s.box.SetPoint(control.MaxPoint),
		TargetC:      s.box.TargetPoint(),
		LastTempC:    s.box.LastTemp(),
		Compensating: s.compensating,
		Actuator:     toModelActuator(s.box.Actuator()),
		UpdatedAt:    now,
	}
}

func (s *BoxService) persist(ctx context.Context, now time.Time) error {
	if err := s.stateRepo.Save(ctx, s.snapshot(now)); err != nil {
		s.log.Errorw("box_state_save_failed", "error", err)
		return fmt.Errorf("save box state: %w", err)
	}
	return nil
}

// record appends e to the event log and publishes it. Failures are logged;
// the regulator decision stands regardless.
func (s *BoxService) record(ctx context.Context, e models.BoxEvent) {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if err := s.eventRepo.Append(ctx, e); err != nil {
		s.log.Errorw("box_event_append_failed", "type", e.Type, "error", err)
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.Warnw("box_event_publish_failed", "type", e.Type, "error", err)
	}
}

func toModelActuator(a control.ActuatorState) models.Actuator {
	return models.Actuator{
		Enabled:   a.Enabled,
		Intensity: a.Intensity,
		Frequency: a.Frequency,
		DutyCycle: a.DutyCycle,
	}
}
