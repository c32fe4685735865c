package models

type TableInfo struct {
	TableName   string `json:"table_name"`
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`
}

type TableColumn struct {
	ColumnName              string   `json:"column_name"`
	ColumnDataType          DataType `json:"column_data_type"`
	ColumnDistinctValueList []any    `json:"column_distinct_value_list"`

	// các trường suy ra khi nạp bộ lọc
	SortedValues    []string       `json:"sorted_values"`
	CheckboxColumns []CheckboxItem `json:"checkbox_columns"`
	Label           string         `json:"label"`
}

type AIModel struct {
	Model           string  `json:"model"`
	ModelName       string  `json:"model_name"`
	Provider        string  `json:"provider"`
	InputTokenRate  float64 `json:"input_token_rate"`
	OutputTokenRate float64 `json:"output_token_rate"`
	MaxTokens       int64   `json:"max_tokens"`
}

type NamedValueList struct {
	Name   string   `json:"name"`
	Column string   `json:"column_name,omitempty"`
	Values []string `json:"values"`
}
