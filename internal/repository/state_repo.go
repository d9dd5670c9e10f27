package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"isolated_box/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

const (
	boxStateRowID = 1

	insertOrUpdateStateSQL = `
		INSERT INTO box_state (id, initialized, min_c, max_c, target_c, last_temp_c, compensating, actuator, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			initialized=excluded.initialized,
			min_c=excluded.min_c,
			max_c=excluded.max_c,
			target_c=excluded.target_c,
			last_temp_c=excluded.last_temp_c,
			compensating=excluded.compensating,
			actuator=excluded.actuator,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, initialized, min_c, max_c, target_c, last_temp_c, compensating, actuator, updated_at
		FROM box_state WHERE id=?
	`
)

// marshalActuator stores the actuator snapshot as a JSON column.
func marshalActuator(a models.Actuator) (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalActuator(s string) (models.Actuator, error) {
	var a models.Actuator
	if s == "" {
		return a, nil
	}
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return models.Actuator{}, err
	}
	return a, nil
}

// Save updates or inserts the box_state row (id always 1).
func (r *StateSQLite) Save(ctx context.Context, state models.BoxState) error {
	actuatorJSON, err := marshalActuator(state.Actuator)
	if err != nil {
		return err
	}

	tsUTC := state.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err = r.db.ExecContext(ctx, insertOrUpdateStateSQL,
		boxStateRowID,
		state.Initialized,
		state.MinSetPointC,
		state.MaxSetPointC,
		state.TargetC,
		state.LastTempC,
		state.Compensating,
		actuatorJSON,
		tsUTC,
	)
	return err
}

// Load fetches the single box_state row. A missing row yields the zero state.
func (r *StateSQLite) Load(ctx context.Context) (models.BoxState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, boxStateRowID)

	var s models.BoxState
	var actuatorJSON string
	if err := row.Scan(
		&s.ID,
		&s.Initialized,
		&s.MinSetPointC,
		&s.MaxSetPointC,
		&s.TargetC,
		&s.LastTempC,
		&s.Compensating,
		&actuatorJSON,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BoxState{}, nil
		}
		return models.BoxState{}, err
	}

	a, err := unmarshalActuator(actuatorJSON)
	if err != nil {
		return models.BoxState{}, err
	}
	s.Actuator = a
	s.UpdatedAt = s.UpdatedAt.UTC()

	return s, nil
}
