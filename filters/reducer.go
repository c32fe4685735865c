package filters

import (
	"errors"
	"fmt"

	"github.com/vnkhanh/insights-dashboard/models"
)

var ErrMissingSentinel = errors.New("missing NULL sentinel")

// MissingSentinelError báo một bộ lọc cột đã sửa nhưng không có checkbox "NULL".
type MissingSentinelError struct {
	Column string
}

func (e *MissingSentinelError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Column, ErrMissingSentinel.Error())
}

func (e *MissingSentinelError) Is(target error) bool {
	return target == ErrMissingSentinel
}

// Reduce gộp bộ lọc cột và các bộ lọc phụ thành mảng filterOptions gửi lên API.
// Bộ lọc cột chưa sửa bị bỏ qua; extras rỗng bị bỏ qua; thứ tự giữ nguyên.
// column_selected_values luôn được tính lại từ checkbox, giá trị client gửi lên bị bỏ.
func Reduce(columns []models.ColumnFilter, extras ...models.ExtraFilter) ([]models.FilterOption, error) {
	out := make([]models.FilterOption, 0, len(columns)+len(extras))

	for _, col := range columns {
		if !col.HasBeenModified {
			continue
		}
		null, ok := NullSelected(col.CheckboxColumns)
		if !ok {
			return nil, &MissingSentinelError{Column: col.ColumnName}
		}
		out = append(out, models.FilterOption{
			ColumnName:           col.ColumnName,
			ColumnSelectedValues: SelectedValues(col.CheckboxColumns),
			ColumnDataType:       col.ColumnDataType,
			Null:                 &null,
		})
	}

	for _, ex := range extras {
		if len(ex.ColumnSelectedValues) == 0 {
			continue
		}
		modified := ex.HasBeenModified
		out = append(out, models.FilterOption{
			ColumnName:           ex.ColumnName,
			ColumnSelectedValues: cloneStrings(ex.ColumnSelectedValues),
			ColumnDataType:       ex.ColumnDataType,
			HasBeenModified:      &modified,
		})
	}

	return out, nil
}

// NullSelected trả về value của checkbox "NULL" đầu tiên (trùng nhãn thì cái đầu thắng).
func NullSelected(items []models.CheckboxItem) (bool, bool) {
	for _, it := range items {
		if it.Label == models.NullLabel {
			return it.Value, true
		}
	}
	return false, false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
