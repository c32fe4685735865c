package filters

import (
	"errors"
	"testing"
	"time"

	"github.com/vnkhanh/insights-dashboard/models"
)

var now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func TestNewDateRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		start     string
		end       string
		wantErr   error
		wantStart string
	}{
		{name: "valid", start: "2026-03-01", end: "2026-04-01", wantStart: "2026-03-01"},
		{name: "same day", start: "2026-03-01", end: "2026-03-01", wantStart: "2026-03-01"},
		{name: "start after end", start: "2026-05-01", end: "2026-04-01", wantErr: ErrInvalidDateRange},
		{name: "too old is clamped", start: "2024-01-01", end: "2026-04-01", wantErr: ErrDateClamped, wantStart: "2025-10-15"},
		{name: "exactly one year", start: "2025-10-15", end: "2026-04-01", wantStart: "2025-10-15"},
		{name: "bad format", start: "03/01/2026", end: "2026-04-01", wantErr: ErrInvalidDate},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := NewDateRange(tc.start, tc.end, now)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v, got %v", tc.wantErr, err)
			}
			if tc.wantStart == "" {
				return
			}
			if f.ColumnName != models.DateRangeColumn || f.ColumnDataType != models.DataTypeDate {
				t.Fatalf("unexpected filter identity %+v", f)
			}
			if f.ColumnSelectedValues[0] != tc.wantStart {
				t.Fatalf("expected start %s, got %s", tc.wantStart, f.ColumnSelectedValues[0])
			}
			if !f.HasBeenModified {
				t.Fatalf("expected modified")
			}
		})
	}
}

func TestNormalizeDateRange_Unmodified(t *testing.T) {
	t.Parallel()

	f, err := NormalizeDateRange(models.DateRangeFilter{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.HasBeenModified || len(f.ColumnSelectedValues) != 0 {
		t.Fatalf("expected empty filter, got %+v", f)
	}
	if _, err := NormalizeDateRange(models.DateRangeFilter{HasBeenModified: true, ColumnSelectedValues: []string{"2026-01-01"}}, now); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
