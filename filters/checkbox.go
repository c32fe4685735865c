package filters

import "github.com/vnkhanh/insights-dashboard/models"

// SelectedValues returns the labels of checked items, NULL excluded.
func SelectedValues(items []models.CheckboxItem) []string {
	out := []string{}
	for _, it := range items {
		if it.Value && it.Label != models.NullLabel {
			out = append(out, it.Label)
		}
	}
	return out
}

// Toggle sets every item labelled label to value and refreshes the selection.
func Toggle(f *models.ColumnFilter, label string, value bool) {
	for i := range f.CheckboxColumns {
		if f.CheckboxColumns[i].Label == label {
			f.CheckboxColumns[i].Value = value
		}
	}
	f.ColumnSelectedValues = SelectedValues(f.CheckboxColumns)
	f.HasBeenModified = true
}

func SelectAll(f *models.ColumnFilter, value bool) {
	for i := range f.CheckboxColumns {
		f.CheckboxColumns[i].Value = value
	}
	f.ColumnSelectedValues = SelectedValues(f.CheckboxColumns)
	f.HasBeenModified = true
}

// Reset đưa bộ lọc về trạng thái ban đầu: chọn tất cả, chưa sửa.
func Reset(f *models.ColumnFilter) {
	for i := range f.CheckboxColumns {
		f.CheckboxColumns[i].Value = true
	}
	f.ColumnSelectedValues = SelectedValues(f.CheckboxColumns)
	f.HasBeenModified = false
}

// FromColumn builds the initial filter state for a table column.
func FromColumn(col models.TableColumn) models.ColumnFilter {
	items := make([]models.CheckboxItem, len(col.CheckboxColumns))
	copy(items, col.CheckboxColumns)
	return models.ColumnFilter{
		ColumnName:           col.ColumnName,
		ColumnDataType:       col.ColumnDataType,
		CheckboxColumns:      items,
		ColumnSelectedValues: SelectedValues(items),
	}
}
