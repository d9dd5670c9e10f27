package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"isolated_box/internal/models"
)

func TestNormalizeFilter(t *testing.T) {
	t.Parallel()

	plus3 := time.FixedZone("UTC+3", 3*3600)
	from := time.Date(2025, time.August, 1, 12, 0, 0, 0, plus3)
	to := time.Date(2025, time.August, 1, 13, 0, 0, 0, plus3)

	tests := []struct {
		name    string
		in      LogFilter
		want    LogFilter
		wantErr error
	}{
		{
			name: "zero filter passes through",
			in:   LogFilter{},
			want: LogFilter{},
		},
		{
			name: "bounds converted to UTC and type upper-cased",
			in:   LogFilter{From: from, To: to, Type: " target_switch "},
			want: LogFilter{From: from.UTC(), To: to.UTC(), Type: models.EventTargetSwitch},
		},
		{
			name:    "inverted range",
			in:      LogFilter{From: to, To: from},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "unknown type",
			in:      LogFilter{Type: "mode_change"},
			wantErr: ErrUnknownEventType,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeFilter(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.From.Equal(tc.want.From) || !got.To.Equal(tc.want.To) || got.Type != tc.want.Type {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
			if !got.From.IsZero() && got.From.Location() != time.UTC {
				t.Fatalf("From not UTC: %v", got.From.Location())
			}
		})
	}
}

func TestEventLogService_List(t *testing.T) {
	t.Parallel()

	repo := &memEventRepo{events: []models.BoxEvent{{EventID: "1", Type: models.EventCompensation}}}
	svc := NewEventLogService(repo)

	got, err := svc.List(context.Background(), LogFilter{Type: "compensation"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || repo.gotType != models.EventCompensation {
		t.Fatalf("unexpected result %+v (type arg %q)", got, repo.gotType)
	}

	if _, err := svc.List(context.Background(), LogFilter{Type: "bogus"}); !errors.Is(err, ErrUnknownEventType) {
		t.Fatalf("want ErrUnknownEventType, got %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("repository must not be queried for invalid filters, calls=%d", repo.listCalls)
	}

	repo.listErr = errors.New("db down")
	if _, err := svc.List(context.Background(), LogFilter{}); err == nil {
		t.Fatalf("expected repository error")
	}
}
