package filters

import (
	"strings"

	"github.com/vnkhanh/insights-dashboard/models"
)

// LexicalTokens turns free-text search input into a lexical filter.
func LexicalTokens(text string) models.LexicalFilter {
	tokens := strings.Fields(text)
	if tokens == nil {
		tokens = []string{}
	}
	return models.LexicalFilter{
		ColumnName:           models.LexicalColumn,
		ColumnSelectedValues: tokens,
		HasBeenModified:      len(tokens) > 0,
	}
}

// MatchItems lọc danh sách checkbox theo chuỗi tìm kiếm (không phân biệt hoa thường).
func MatchItems(items []models.CheckboxItem, search string) []models.CheckboxItem {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return items
	}
	out := []models.CheckboxItem{}
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Label), search) {
			out = append(out, it)
		}
	}
	return out
}
