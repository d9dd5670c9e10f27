package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"isolated_box/internal/control"
	"isolated_box/internal/logger"
	"isolated_box/internal/metrics"
	"isolated_box/internal/models"
	"isolated_box/internal/queue"
	"isolated_box/internal/repository"
	"isolated_box/internal/sensor"
)

var (
	ErrInvalidSample = errors.New("invalid sample value")
	ErrUnknownUnit   = errors.New("unknown temperature unit")
)

// IngestSourceName labels samples pushed through Ingest without a source.
const IngestSourceName = "api"

// PipelineService decouples sampling from regulation: a producer pushes
// readings into a work queue and a single consumer feeds them to the box in
// arrival order.
type PipelineService struct {
	box        Box
	queue      *queue.WorkQueue[models.SampleRecord]
	sampleRepo repository.SampleRepo
	eventRepo  repository.EventRepo
	metrics    *metrics.Metric
	log        *logger.Logger
	warnDepth  int
	drainStop  bool
}

func NewPipelineService(box Box, sampleRepo repository.SampleRepo, eventRepo repository.EventRepo, opts Options) *PipelineService {
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}
	return &PipelineService{
		box:        box,
		queue:      queue.New[models.SampleRecord](),
		sampleRepo: sampleRepo,
		eventRepo:  eventRepo,
		metrics:    opts.Metrics,
		log:        log,
		warnDepth:  opts.QueueWarnDepth,
		drainStop:  opts.DrainOnStop,
	}
}

// Run starts the consumer and, when src is not nil, a producer reading src
// every tick. It returns once ctx is cancelled and both loops have exited.
// Samples still queued at that point are drained when DrainOnStop is set and
// left in the queue otherwise.
func (s *PipelineService) Run(ctx context.Context, src sensor.Source, tick time.Duration) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.consume(ctx)
	}()

	if src != nil {
		s.produce(ctx, src, tick)
	} else {
		<-ctx.Done()
	}
	wg.Wait()
	if s.drainStop {
		n := s.Drain(context.WithoutCancel(ctx))
		s.log.Infow("pipeline_drained", "samples", n)
	}
	s.log.Infow("pipeline_stopped", "queued", s.queue.Len())
}

func (s *PipelineService) produce(ctx context.Context, src sensor.Source, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			rec, err := src.Read(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.log.Warnw("sensor_read_failed", "error", err)
				continue
			}
			s.push(rec)
		}
	}
}

func (s *PipelineService) consume(ctx context.Context) {
	for {
		rec, err := s.queue.PopContext(ctx)
		if err != nil {
			return
		}
		s.observeDepth()
		s.handle(ctx, rec)
	}
}

// Ingest validates rec and queues it for the consumer.
func (s *PipelineService) Ingest(ctx context.Context, rec models.SampleRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := ParseSample(rec); err != nil {
		return err
	}
	if rec.Source == "" {
		rec.Source = IngestSourceName
	}
	s.push(rec)
	return nil
}

// Drain handles every queued sample on the calling goroutine and returns
// how many it processed.
func (s *PipelineService) Drain(ctx context.Context) int {
	n := 0
	for {
		rec, ok := s.queue.TryPop()
		if !ok {
			s.observeDepth()
			return n
		}
		s.handle(ctx, rec)
		n++
	}
}

func (s *PipelineService) QueueDepth() int { return s.queue.Len() }

func (s *PipelineService) Recent(ctx context.Context, limit int) ([]models.StoredSample, error) {
	return s.sampleRepo.Recent(ctx, limit)
}

func (s *PipelineService) push(rec models.SampleRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.ObservedAt.IsZero() {
		rec.ObservedAt = time.Now().UTC()
	}
	s.queue.Push(rec)

	depth := s.queue.Len()
	if s.metrics != nil {
		s.metrics.QueueDepth(depth)
	}
	if s.warnDepth > 0 && depth > s.warnDepth {
		s.log.Warnw("pipeline_queue_backlog", "depth", depth, "warn_depth", s.warnDepth)
	}
}

func (s *PipelineService) observeDepth() {
	if s.metrics != nil {
		s.metrics.QueueDepth(s.queue.Len())
	}
}

// handle converts one sample, runs compensation and stores the outcome.
func (s *PipelineService) handle(ctx context.Context, rec models.SampleRecord) {
	tempC, err := ParseSample(rec)
	if err != nil {
		s.count(metrics.ResultInvalid)
		s.log.Warnw("sample_invalid", "id", rec.ID, "value", rec.Value, "unit", rec.Unit, "error", err)
		if aerr := s.eventRepo.Append(ctx, models.BoxEvent{
			Type:        models.EventError,
			Description: "Sample rejected: " + err.Error(),
			Metadata:    map[string]any{"sample_id": rec.ID, "value": rec.Value, "unit": rec.Unit, "source": rec.Source},
		}); aerr != nil {
			s.log.Errorw("box_event_append_failed", "type", models.EventError, "error", aerr)
		}
		return
	}

	d, err := s.box.Compensate(ctx, tempC)
	switch {
	case errors.Is(err, ErrNotInitialized):
		s.count(metrics.ResultRejected)
		s.log.Debugw("sample_before_configure", "id", rec.ID, "temp_c", tempC)
	case err != nil:
		s.count(metrics.ResultRejected)
		s.log.Errorw("box_compensation_failed", "id", rec.ID, "temp_c", tempC, "error", err)
	default:
		s.count(metrics.ResultAccepted)
	}

	if err := s.sampleRepo.Append(ctx, models.StoredSample{
		SampleRecord: rec,
		TempC:        tempC,
		Decision:     d.TargetC,
	}); err != nil {
		s.log.Errorw("sample_save_failed", "id", rec.ID, "error", err)
	}
}

func (s *PipelineService) count(result string) {
	if s.metrics != nil {
		s.metrics.Sample(result)
	}
}

// ParseSample reads the numeric value of rec and converts it to Celsius.
func ParseSample(rec models.SampleRecord) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(rec.Value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", rec.Value, ErrInvalidSample)
	}
	scale, err := control.ParseScale(rec.Unit)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", rec.Unit, ErrUnknownUnit)
	}
	return control.ToCelsius(v, scale), nil
}
