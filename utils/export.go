package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/vnkhanh/insights-dashboard/models"
)

const resultsSheet = "Results"

// ResultColumns trả về thứ tự cột: theo Columns nếu có, nếu không thì gom từ các dòng và sort.
func ResultColumns(rs models.ResultSet) []string {
	if len(rs.Columns) > 0 {
		return rs.Columns
	}
	seen := map[string]struct{}{}
	cols := []string{}
	for _, row := range rs.Rows {
		for k := range row {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64, bool, int, int64:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

func WriteResultsCSV(w io.Writer, rs models.ResultSet) error {
	cols := ResultColumns(rs)
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, row := range rs.Rows {
		rec := make([]string, len(cols))
		for i, c := range cols {
			rec[i] = cellString(row[c])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteResultsXLSX(w io.Writer, rs models.ResultSet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return err
	}
	cols := ResultColumns(rs)

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range rs.Rows {
		values := make([]any, len(cols))
		for i, c := range cols {
			switch v := row[c].(type) {
			case float64, bool, string, nil:
				values[i] = v
			default:
				values[i] = cellString(v)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultsSheet, cell, &values); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
