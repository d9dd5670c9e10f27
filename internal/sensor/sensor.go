// Package sensor provides temperature sources for the sampling pipeline.
package sensor

import (
	"context"
	"errors"

	"isolated_box/internal/models"
)

// ErrNoReading is returned when a source has nothing to report.
var ErrNoReading = errors.New("no temperature reading")

// Source produces one temperature observation per call.
type Source interface {
	Read(ctx context.Context) (models.SampleRecord, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (models.SampleRecord, error)

func (f SourceFunc) Read(ctx context.Context) (models.SampleRecord, error) { return f(ctx) }
