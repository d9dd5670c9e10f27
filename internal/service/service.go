package service

import (
	"context"
	"time"

	"isolated_box/internal/control"
	"isolated_box/internal/logger"
	"isolated_box/internal/metrics"
	"isolated_box/internal/models"
	"isolated_box/internal/pub"
	"isolated_box/internal/repository"
	"isolated_box/internal/sensor"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Box exposes the regulator: setpoint configuration, target selection and
// compensation of measured temperatures.
type Box interface {
	Configure(ctx context.Context, minC, maxC float64) error
	Compensate(ctx context.Context, tempC float64) (Decision, error)
	SetTarget(ctx context.Context, p control.Point) (float64, error)
	Setpoints() Setpoints
	Target() float64
	Snapshot() models.BoxState
}

// Monitoring exposes the last persisted box state.
type Monitoring interface {
	GetState(ctx context.Context) (models.BoxState, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.BoxEvent, error)
}

// Pipeline moves samples from a sensor source through the work queue into
// the regulator. Stop it by cancelling the context passed to Run.
type Pipeline interface {
	Run(ctx context.Context, src sensor.Source, tick time.Duration)
	Ingest(ctx context.Context, rec models.SampleRecord) error
	QueueDepth() int
	Recent(ctx context.Context, limit int) ([]models.StoredSample, error)
}

type Service struct {
	Box
	Monitoring
	EventLog
	Pipeline
	Authorization
}

// Options carries the collaborators shared by the services. Nil fields get
// no-op implementations.
type Options struct {
	Log            *logger.Logger
	Metrics        *metrics.Metric
	Publisher      pub.Publisher
	Auth           AuthConfig
	ActuatorLimits control.ActuatorLimits
	Strategy       control.CompensationStrategy
	QueueWarnDepth int
	// DrainOnStop makes Pipeline.Run compensate samples still queued when
	// its context is cancelled instead of leaving them in the queue.
	DrainOnStop bool
}

func NewService(repos *repository.Repository, opts Options) *Service {
	box := NewBoxService(repos.StateRepo, repos.EventRepo, opts)
	return &Service{
		Box:           box,
		Monitoring:    NewMonitoringService(repos.StateRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Pipeline:      NewPipelineService(box, repos.SampleRepo, repos.EventRepo, opts),
		Authorization: NewAuthService(repos.Auth, opts.Auth),
	}
}
