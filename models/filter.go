package models

type DataType string

const (
	DataTypeString DataType = "string"
	DataTypeDate   DataType = "date"
	DataTypeNumber DataType = "number"
)

const (
	// NullLabel là nhãn checkbox đại diện cho "giữ lại các dòng có giá trị NULL"
	NullLabel = "NULL"

	DateRangeColumn = "rpt_mst_date"
	LexicalColumn   = "lexicalsearch"
)

type CheckboxItem struct {
	Label string `json:"label"`
	Value bool   `json:"value"`
}

type ColumnFilter struct {
	ColumnName           string         `json:"column_name"`
	ColumnDataType       DataType       `json:"column_data_type"`
	CheckboxColumns      []CheckboxItem `json:"checkbox_columns"`
	ColumnSelectedValues []string       `json:"column_selected_values"`
	HasBeenModified      bool           `json:"has_been_modified"`
}

// ExtraFilter is the shared shape of the date, lexical and uploaded-id filters
// once they leave their own component.
type ExtraFilter struct {
	ColumnName           string   `json:"column_name"`
	ColumnDataType       DataType `json:"column_data_type,omitempty"`
	ColumnSelectedValues []string `json:"column_selected_values"`
	HasBeenModified      bool     `json:"has_been_modified"`
}

type DateRangeFilter struct {
	ColumnName           string   `json:"column_name"`
	ColumnDataType       DataType `json:"column_data_type"`
	ColumnSelectedValues []string `json:"column_selected_values"` // [start, end] YYYY-MM-DD
	HasBeenModified      bool     `json:"has_been_modified"`
}

func (d DateRangeFilter) Extra() ExtraFilter {
	return ExtraFilter{
		ColumnName:           d.ColumnName,
		ColumnDataType:       d.ColumnDataType,
		ColumnSelectedValues: d.ColumnSelectedValues,
		HasBeenModified:      d.HasBeenModified,
	}
}

type UploadedIDFilter struct {
	ColumnName           string   `json:"column_name"`
	ColumnSelectedValues []string `json:"column_selected_values"`
	HasBeenModified      bool     `json:"has_been_modified"`
}

func (u UploadedIDFilter) Extra() ExtraFilter {
	return ExtraFilter{
		ColumnName:           u.ColumnName,
		ColumnSelectedValues: u.ColumnSelectedValues,
		HasBeenModified:      u.HasBeenModified,
	}
}

type LexicalFilter struct {
	ColumnName           string   `json:"column_name"`
	ColumnSelectedValues []string `json:"column_selected_values"`
	HasBeenModified      bool     `json:"has_been_modified"`
}

func (l LexicalFilter) Extra() ExtraFilter {
	return ExtraFilter{
		ColumnName:           l.ColumnName,
		ColumnSelectedValues: l.ColumnSelectedValues,
		HasBeenModified:      l.HasBeenModified,
	}
}

// FilterOption là một phần tử trong mảng filterOptions gửi lên backend.
// Null chỉ có với bộ lọc cột (checkbox), extras không mang trường này.
type FilterOption struct {
	ColumnName           string   `json:"column_name"`
	ColumnSelectedValues []string `json:"column_selected_values"`
	ColumnDataType       DataType `json:"column_data_type,omitempty"`
	Null                 *bool    `json:"null,omitempty"`
	HasBeenModified      *bool    `json:"has_been_modified,omitempty"`
}
