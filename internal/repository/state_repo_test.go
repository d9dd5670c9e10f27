package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"isolated_box/internal/models"
	"isolated_box/internal/repository"
)

var stateCols = []string{"id", "initialized", "min_c", "max_c", "target_c", "last_temp_c", "compensating", "actuator", "updated_at"}

func TestStateSQLite_Save_SetsUTCNowWhenTimeZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewStateSQLite(db)

	state := models.BoxState{
		Initialized:  true,
		MinSetPointC: 25,
		MaxSetPointC: 50,
		TargetC:      50,
		LastTempC:    51,
		Compensating: true,
		Actuator:     models.Actuator{Enabled: true, Intensity: 40},
	}

	isUTCRecent := argFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO box_state")).
		WithArgs(1, true, 25.0, 50.0, 50.0, 51.0, true,
			`{"enabled":true,"intensity":40,"frequency":0,"duty_cycle":0}`,
			isUTCRecent,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStateSQLite_Save_ConvertsGivenTimeToUTC(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewStateSQLite(db)

	original := time.Date(2023, 10, 5, 12, 34, 56, 0, time.FixedZone("UTC+9", 9*3600))
	expectedUTC := original.UTC()

	isExactUTC := argFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		return ok && tm.Equal(expectedUTC) && tm.Location() == time.UTC
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO box_state")).
		WithArgs(1, false, 0.0, 0.0, 65535.0, 65535.0, false, sqlmock.AnyArg(), isExactUTC).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Save(context.Background(), models.BoxState{
		TargetC:   65535,
		LastTempC: 65535,
		UpdatedAt: original,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStateSQLite_Save_ExecErrorIsPropagated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewStateSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO box_state")).
		WillReturnError(errors.New("db down"))

	if err := repo.Save(context.Background(), models.BoxState{}); err == nil {
		t.Fatalf("Save() expected error, got nil")
	}
}

func TestStateSQLite_Load_NoRowsReturnsZeroValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewStateSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, initialized, min_c")).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got != (models.BoxState{}) {
		t.Fatalf("Load() expected zero state, got: %+v", got)
	}
}

func TestStateSQLite_Load_DecodesActuatorAndUTC(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewStateSQLite(db)

	nonUTC := time.Date(2024, 2, 1, 8, 30, 0, 0, time.FixedZone("EST", -5*3600))
	rows := sqlmock.NewRows(stateCols).
		AddRow(1, true, 25.0, 50.0, 25.0, 23.0, true,
			`{"enabled":true,"intensity":80,"frequency":0,"duty_cycle":0}`, nonUTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, initialized, min_c")).
		WithArgs(1).
		WillReturnRows(rows)

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !got.Initialized || got.MinSetPointC != 25 || got.MaxSetPointC != 50 ||
		got.TargetC != 25 || got.LastTempC != 23 || !got.Compensating {
		t.Fatalf("Load() unexpected fields: %+v", got)
	}
	if got.Actuator != (models.Actuator{Enabled: true, Intensity: 80}) {
		t.Fatalf("Load() actuator mismatch: %+v", got.Actuator)
	}
	if got.UpdatedAt.Location() != time.UTC {
		t.Fatalf("Load() UpdatedAt not UTC: %v", got.UpdatedAt.Location())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStateSQLite_Load_InvalidActuatorJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewStateSQLite(db)

	rows := sqlmock.NewRows(stateCols).
		AddRow(1, true, 25.0, 50.0, 25.0, 23.0, false, `[1,2]`, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, initialized, min_c")).
		WithArgs(1).
		WillReturnRows(rows)

	if _, err := repo.Load(context.Background()); err == nil {
		t.Fatalf("Load() expected error due to invalid actuator JSON, got nil")
	}
}

type argFunc func(v driver.Value) bool

func (f argFunc) Match(v driver.Value) bool { return f(v) }
