package filters

import (
	"errors"
	"time"

	"github.com/vnkhanh/insights-dashboard/models"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrInvalidDate      = errors.New("dates must be formatted as YYYY-MM-DD")
	// ErrDateClamped đi kèm giá trị đã được kéo về mốc một năm trước, không phải lỗi chặn.
	ErrDateClamped = errors.New("start date is more than one year ago; clamped")
)

// EarliestStart là ngày sớm nhất được phép chọn: hôm nay lùi một năm.
func EarliestStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(-1, 0, 0)
}

// NewDateRange validates [start, end] and clamps start to one year ago.
// When clamping happens the returned filter is usable and err is ErrDateClamped.
func NewDateRange(start, end string, now time.Time) (models.DateRangeFilter, error) {
	f := models.DateRangeFilter{
		ColumnName:     models.DateRangeColumn,
		ColumnDataType: models.DataTypeDate,
	}

	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return f, ErrInvalidDate
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return f, ErrInvalidDate
	}
	if s.After(e) {
		return f, ErrInvalidDateRange
	}

	var clampErr error
	if earliest := EarliestStart(now); s.Before(earliest) {
		s = earliest
		clampErr = ErrDateClamped
		if s.After(e) {
			return f, ErrInvalidDateRange
		}
	}

	f.ColumnSelectedValues = []string{s.Format(DateLayout), e.Format(DateLayout)}
	f.HasBeenModified = true
	return f, clampErr
}

// NormalizeDateRange re-checks a filter that came from the browser.
func NormalizeDateRange(f models.DateRangeFilter, now time.Time) (models.DateRangeFilter, error) {
	if !f.HasBeenModified || len(f.ColumnSelectedValues) == 0 {
		return models.DateRangeFilter{
			ColumnName:     models.DateRangeColumn,
			ColumnDataType: models.DataTypeDate,
		}, nil
	}
	if len(f.ColumnSelectedValues) != 2 {
		return f, ErrInvalidDateRange
	}
	return NewDateRange(f.ColumnSelectedValues[0], f.ColumnSelectedValues[1], now)
}
