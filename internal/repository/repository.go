package repository

import (
	"context"
	"database/sql"
	"time"

	"isolated_box/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type StateRepo interface {
	Save(ctx context.Context, s models.BoxState) error
	Load(ctx context.Context) (models.BoxState, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.BoxEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.BoxEvent, error)
}

type SampleRepo interface {
	Append(ctx context.Context, s models.StoredSample) error
	Recent(ctx context.Context, limit int) ([]models.StoredSample, error)
}

type Repository struct {
	StateRepo  StateRepo
	EventRepo  EventRepo
	SampleRepo SampleRepo
	Auth       Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo:  NewStateSQLite(db),
		EventRepo:  NewEventSQLite(db),
		SampleRepo: NewSampleSQLite(db),
		Auth:       NewUserRepository(db),
	}
}
