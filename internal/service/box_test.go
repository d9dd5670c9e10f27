package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"isolated_box/internal/control"
	"isolated_box/internal/metrics"
	"isolated_box/internal/models"
)

type recordingPublisher struct {
	published []models.BoxEvent
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, e models.BoxEvent) error {
	p.published = append(p.published, e)
	return p.err
}

func (p *recordingPublisher) Close() {}

func newTestBox(t *testing.T, opts Options) (*BoxService, *memStateRepo, *memEventRepo) {
	t.Helper()
	states := &memStateRepo{}
	events := &memEventRepo{}
	return NewBoxService(states, events, opts), states, events
}

func TestBoxService_Configure(t *testing.T) {
	box, states, events := newTestBox(t, Options{})

	if err := box.Configure(context.Background(), 25, 50); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	st := states.last()
	if !st.Initialized || st.MinSetPointC != 25 || st.MaxSetPointC != 50 || st.TargetC != 25 {
		t.Fatalf("persisted state mismatch: %+v", st)
	}
	if got := events.types(); !slices.Equal(got, []string{models.EventSetpoints}) {
		t.Fatalf("events: %v", got)
	}

	sp := box.Setpoints()
	if sp.Target != "MIN" || sp.Application.Min != 25 || sp.Application.Max != 50 || sp.Physical.Max != control.PhysicalMaxC {
		t.Fatalf("setpoints mismatch: %+v", sp)
	}
}

func TestBoxService_ConfigureRejected(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
	}{
		{"inverted", 50, 25},
		{"equal", 30, 30},
		{"below physical", 10, 50},
		{"above physical", 25, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			box, _, events := newTestBox(t, Options{})

			err := box.Configure(context.Background(), tc.min, tc.max)
			if !errors.Is(err, ErrInvalidSetpoints) {
				t.Fatalf("want ErrInvalidSetpoints, got %v", err)
			}
			if got := events.types(); !slices.Equal(got, []string{models.EventError}) {
				t.Fatalf("events: %v", got)
			}
			if box.Setpoints().Initialized {
				t.Fatalf("box must stay uninitialized")
			}
		})
	}
}

func TestBoxService_ConfigureRejectedWithSaveFailure(t *testing.T) {
	box, states, _ := newTestBox(t, Options{})
	saveErr := errors.New("disk full")
	states.saveErr = saveErr

	err := box.Configure(context.Background(), 50, 25)
	if !errors.Is(err, ErrInvalidSetpoints) {
		t.Fatalf("validation error lost: %v", err)
	}
	if !errors.Is(err, saveErr) {
		t.Fatalf("save error lost: %v", err)
	}
}

func TestBoxService_CompensateBeforeConfigure(t *testing.T) {
	box, states, _ := newTestBox(t, Options{})

	d, err := box.Compensate(context.Background(), 37)
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("want ErrNotInitialized, got %v", err)
	}
	if d.TargetC != control.UndefinedTemp || d.Compensating {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if states.saves != 0 {
		t.Fatalf("nothing should be persisted, got %d saves", states.saves)
	}
}

func TestBoxService_CompensateSequence(t *testing.T) {
	publisher := &recordingPublisher{}
	box, states, events := newTestBox(t, Options{Publisher: publisher, Metrics: metrics.New("test")})
	ctx := context.Background()

	if err := box.Configure(ctx, 25, 50); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	steps := []struct {
		temp     float64
		want     float64
		point    string
		switched bool
	}{
		{37, control.UndefinedTemp, "", false},
		{51, 50, "MAX", true},
		{52, 50, "MAX", false},
		{23, 25, "MIN", true},
		{25, control.UndefinedTemp, "", false},
	}
	for i, s := range steps {
		d, err := box.Compensate(ctx, s.temp)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if d.TargetC != s.want || d.Point != s.point || d.Switched != s.switched {
			t.Fatalf("step %d (%v): got %+v", i, s.temp, d)
		}
		if st := states.last(); st.LastTempC != s.temp || st.Compensating != (s.want != control.UndefinedTemp) {
			t.Fatalf("step %d: persisted %+v", i, st)
		}
	}

	want := []string{
		models.EventSetpoints,
		models.EventTargetSwitch, models.EventCompensation,
		models.EventCompensation,
		models.EventTargetSwitch, models.EventCompensation,
	}
	if got := events.types(); !slices.Equal(got, want) {
		t.Fatalf("events:\nwant %v\ngot  %v", want, got)
	}
	if len(publisher.published) != len(want) {
		t.Fatalf("published %d events, want %d", len(publisher.published), len(want))
	}
}

func TestBoxService_PublishFailureDoesNotFailDecision(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("nats down")}
	box, _, _ := newTestBox(t, Options{Publisher: publisher})
	ctx := context.Background()

	if err := box.Configure(ctx, 25, 50); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	d, err := box.Compensate(ctx, 60)
	if err != nil || d.TargetC != 50 {
		t.Fatalf("unexpected: %+v %v", d, err)
	}
}

func TestBoxService_SaveErrorPropagates(t *testing.T) {
	box, states, _ := newTestBox(t, Options{})
	ctx := context.Background()
	if err := box.Configure(ctx, 25, 50); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	states.saveErr = errors.New("disk full")
	d, err := box.Compensate(ctx, 60)
	if err == nil {
		t.Fatalf("expected save error")
	}
	if d.TargetC != 50 {
		t.Fatalf("decision should still be reported, got %+v", d)
	}
}

func TestBoxService_SetTarget(t *testing.T) {
	box, _, events := newTestBox(t, Options{})
	ctx := context.Background()

	if _, err := box.SetTarget(ctx, control.MaxPoint); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("want ErrNotInitialized, got %v", err)
	}
	if _, err := box.SetTarget(ctx, control.NoChange); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("want ErrInvalidPoint, got %v", err)
	}

	if err := box.Configure(ctx, 25, 50); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	v, err := box.SetTarget(ctx, control.MaxPoint)
	if err != nil || v != 50 {
		t.Fatalf("SetTarget: %v %v", v, err)
	}
	if box.Target() != 50 {
		t.Fatalf("Target: want 50, got %v", box.Target())
	}
	// already MAX: no extra switch event
	if _, err := box.SetTarget(ctx, control.MaxPoint); err != nil {
		t.Fatalf("SetTarget: %v", err)
	}
	want := []string{models.EventSetpoints, models.EventTargetSwitch}
	if got := events.types(); !slices.Equal(got, want) {
		t.Fatalf("events: want %v, got %v", want, got)
	}
}

func TestBoxService_FailedReconfigureKeepsInitializedButSentinels(t *testing.T) {
	box, states, _ := newTestBox(t, Options{})
	ctx := context.Background()

	if err := box.Configure(ctx, 25, 50); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := box.Configure(ctx, 10, 50); !errors.Is(err, ErrInvalidSetpoints) {
		t.Fatalf("want ErrInvalidSetpoints, got %v", err)
	}

	st := states.last()
	if !st.Initialized || st.MinSetPointC != control.SetpointUnavailable || st.TargetC != control.SetpointUnavailable {
		t.Fatalf("unexpected state after failed reconfigure: %+v", st)
	}
	d, err := box.Compensate(ctx, 150)
	if err != nil || d.TargetC != control.UndefinedTemp {
		t.Fatalf("want undefined decision, got %+v %v", d, err)
	}
}

func TestBoxService_StrategyAndLimitsFromOptions(t *testing.T) {
	limits := control.DefaultActuatorLimits()
	limits.DutyCycleDefault = 50
	box, _, _ := newTestBox(t, Options{
		ActuatorLimits: limits,
		Strategy:       control.OnOff{Intensity: 70},
	})
	ctx := context.Background()
	if err := box.Configure(ctx, 25, 50); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	d, err := box.Compensate(ctx, 20)
	if err != nil {
		t.Fatalf("Compensate: %v", err)
	}
	if !d.Actuator.Enabled || d.Actuator.Intensity != 70 {
		t.Fatalf("actuator: %+v", d.Actuator)
	}
	if snap := box.Snapshot(); snap.Actuator.Intensity != 70 || !snap.Compensating {
		t.Fatalf("snapshot: %+v", snap)
	}
}
