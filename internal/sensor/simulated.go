package sensor

import (
	"context"
	"math"
	"sync"
	"time"

	"isolated_box/internal/control"
	"isolated_box/internal/models"
)

// SimSourceName labels samples produced by the simulator.
const SimSourceName = "sim"

// TargetFunc reports the setpoint the regulator is driving towards and
// whether it is currently compensating.
type TargetFunc func() (targetC float64, compensating bool)

// SimConfig sets up the box model. Rates are in °C per Read.
type SimConfig struct {
	StartC        float64
	AmbientC      float64
	DriftCPerTick float64
	RampCPerTick  float64
	Unit          control.Scale
	Target        TargetFunc
}

// Simulated models the box air temperature: it relaxes toward ambient and,
// while the regulator compensates, ramps toward the target setpoint.
type Simulated struct {
	mu    sync.Mutex
	cfg   SimConfig
	tempC float64
	now   func() time.Time
}

func NewSimulated(cfg SimConfig) *Simulated {
	return &Simulated{cfg: cfg, tempC: cfg.StartC, now: time.Now}
}

func (s *Simulated) Read(ctx context.Context) (models.SampleRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.SampleRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.step()

	rec := models.NewSampleRecord(round2(control.FromCelsius(s.tempC, s.cfg.Unit)), s.cfg.Unit.String())
	rec.Source = SimSourceName
	rec.ObservedAt = s.now().UTC()
	return rec, nil
}

// temperatureC returns the modelled temperature.
func (s *Simulated) temperatureC() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tempC
}

func (s *Simulated) step() {
	if s.cfg.Target != nil {
		if target, ok := s.cfg.Target(); ok && target != control.UndefinedTemp {
			s.tempC = approach(s.tempC, target, s.cfg.RampCPerTick)
			return
		}
	}
	s.tempC = approach(s.tempC, s.cfg.AmbientC, s.cfg.DriftCPerTick)
}

// approach moves v toward goal by at most step.
func approach(v, goal, step float64) float64 {
	switch {
	case v < goal:
		return math.Min(v+step, goal)
	case v > goal:
		return math.Max(v-step, goal)
	}
	return v
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
