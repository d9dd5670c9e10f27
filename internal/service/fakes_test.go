package service

import (
	"context"
	"sync"
	"time"

	"isolated_box/internal/models"
)

// memStateRepo keeps the last saved state.
type memStateRepo struct {
	mu      sync.Mutex
	state   models.BoxState
	saves   int
	loadErr error
	saveErr error
}

func (r *memStateRepo) Save(_ context.Context, s models.BoxState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.state = s
	r.saves++
	return nil
}

func (r *memStateRepo) Load(context.Context) (models.BoxState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.loadErr
}

func (r *memStateRepo) last() models.BoxState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// memEventRepo records appended events and captures List arguments.
type memEventRepo struct {
	mu     sync.Mutex
	events []models.BoxEvent

	gotFrom, gotTo time.Time
	gotType        string
	listCalls      int
	listErr        error
}

func (r *memEventRepo) Append(_ context.Context, e models.BoxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *memEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.BoxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	r.gotFrom, r.gotTo, r.gotType = from, to, typ
	return r.events, r.listErr
}

func (r *memEventRepo) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

// memSampleRepo stores samples in arrival order.
type memSampleRepo struct {
	mu      sync.Mutex
	samples []models.StoredSample
}

func (r *memSampleRepo) Append(_ context.Context, s models.StoredSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, s)
	return nil
}

func (r *memSampleRepo) Recent(_ context.Context, limit int) ([]models.StoredSample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.StoredSample, 0, limit)
	for i := len(r.samples) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.samples[i])
	}
	return out, nil
}

func (r *memSampleRepo) all() []models.StoredSample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.StoredSample(nil), r.samples...)
}
