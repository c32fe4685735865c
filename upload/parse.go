package upload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vnkhanh/insights-dashboard/models"
)

var (
	ErrNotCSV       = errors.New("Only .csv files are supported")
	ErrNameRequired = errors.New("Name is required")
)

var whitespace = regexp.MustCompile(`\s+`)

// NewFilter đánh dấu modified chỉ khi có giá trị.
func NewFilter(column string, values []string) models.UploadedIDFilter {
	if values == nil {
		values = []string{}
	}
	return models.UploadedIDFilter{
		ColumnName:           column,
		ColumnSelectedValues: values,
		HasBeenModified:      len(values) > 0,
	}
}

// ParseCSV reads the first column of a CSV with a header row. The header name
// is ignored; column is fixed by the caller.
func ParseCSV(r io.Reader, filename, column string) (models.UploadedIDFilter, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return NewFilter(column, nil), ErrNotCSV
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return NewFilter(column, nil), nil
		}
		return NewFilter(column, nil), fmt.Errorf("read csv header: %w", err)
	}

	values := []string{}
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return NewFilter(column, nil), fmt.Errorf("read csv: %w", err)
		}
		if len(rec) == 0 || rec[0] == "" {
			continue
		}
		values = append(values, rec[0])
	}
	return NewFilter(column, values), nil
}

// ParsePasted tách theo dấu phẩy nếu có, ngược lại theo khoảng trắng.
// Token giữ nguyên, không trim, không loại trùng.
func ParsePasted(text, column string) models.UploadedIDFilter {
	var values []string
	if strings.Contains(text, ",") {
		values = strings.Split(text, ",")
	} else {
		values = whitespace.Split(text, -1)
	}
	if len(values) == 1 && values[0] == "" {
		values = nil
	}
	return NewFilter(column, values)
}

// ParseNamedValues accepts either a JSON array or a comma-delimited string.
func ParseNamedValues(raw json.RawMessage) ([]string, error) {
	raw = json.RawMessage(strings.TrimSpace(string(raw)))
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, v := range list {
			out = append(out, stringify(v))
		}
		return out, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("named values: expected array or string: %w", err)
	}
	if s == "" {
		return []string{}, nil
	}
	return strings.Split(s, ","), nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
