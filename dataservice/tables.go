package dataservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/vnkhanh/insights-dashboard/models"
	"github.com/vnkhanh/insights-dashboard/utils"
)

// GetTableListing chấp nhận cả mảng tên bảng lẫn mảng object.
func (c *Client) GetTableListing(ctx context.Context) ([]models.TableInfo, error) {
	raw, err := c.get(ctx, EndpointTableListing, nil)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err == nil {
		out := make([]models.TableInfo, 0, len(names))
		for _, n := range names {
			out = append(out, models.TableInfo{TableName: n})
		}
		return out, nil
	}

	out := []models.TableInfo{}
	if err := decodeInto(raw, EndpointTableListing, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTableFilters(ctx context.Context, table string) ([]models.TableColumn, error) {
	if table == "" {
		return nil, invalid(errors.New("table_name is required"))
	}
	q := url.Values{}
	q.Set("table_name", table)
	raw, err := c.get(ctx, EndpointTableFilters, q)
	if err != nil {
		return nil, err
	}

	cols := []models.TableColumn{}
	if err := decodeInto(raw, EndpointTableFilters, &cols); err != nil {
		return nil, err
	}
	for i := range cols {
		EnrichColumn(&cols[i])
	}
	return cols, nil
}

// EnrichColumn fills the derived fields: sorted distinct values, checkbox items
// (all selected, plus a selected NULL entry) and a display label.
func EnrichColumn(col *models.TableColumn) {
	if col.ColumnDataType == "" {
		col.ColumnDataType = models.DataTypeString
	}
	col.SortedValues = SortDistinct(col.ColumnDistinctValueList, col.ColumnDataType)

	items := make([]models.CheckboxItem, 0, len(col.SortedValues)+1)
	for _, v := range col.SortedValues {
		items = append(items, models.CheckboxItem{Label: v, Value: true})
	}
	items = append(items, models.CheckboxItem{Label: models.NullLabel, Value: true})
	col.CheckboxColumns = items
	col.Label = utils.ColumnLabel(col.ColumnName)
}

// SortDistinct bỏ trùng, bỏ null, rồi sort theo kiểu dữ liệu của cột.
func SortDistinct(values []any, dt models.DataType) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, v := range values {
		if v == nil {
			continue
		}
		s := toLabel(v)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	if dt == models.DataTypeNumber {
		nums := make(map[string]*big.Rat, len(out))
		for _, s := range out {
			if r, ok := exactNumber(s); ok {
				nums[s] = r
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			a, okA := nums[out[i]]
			b, okB := nums[out[j]]
			switch {
			case okA && okB:
				return a.Cmp(b) < 0
			case okA:
				return true
			case okB:
				return false
			default:
				return out[i] < out[j]
			}
		})
		return out
	}
	sort.Strings(out)
	return out
}

// exactNumber parses a decimal label without going through float64.
func exactNumber(s string) (*big.Rat, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	r, ok := new(big.Rat).SetString(s)
	return r, ok
}

func toLabel(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
