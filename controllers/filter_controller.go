package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/filters"
	"github.com/vnkhanh/insights-dashboard/models"
)

const (
	filterActionToggle    = "toggle"
	filterActionSelectAll = "select_all"
	filterActionReset     = "reset"
)

type filterActionReq struct {
	Filter models.ColumnFilter `json:"filter"`
	Action string              `json:"action"`
	Label  string              `json:"label"`
	Value  bool                `json:"value"`
	Search string              `json:"search"`
}

// POST /api/filters/apply
// Áp một thao tác checkbox lên bộ lọc cột và trả về trạng thái mới cùng danh sách
// checkbox khớp ô tìm kiếm. Action rỗng chỉ lọc danh sách hiển thị.
func ApplyFilterAction(c *gin.Context) {
	var req filterActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	f := req.Filter
	switch req.Action {
	case filterActionToggle:
		if req.Label == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "label is required for toggle"})
			return
		}
		filters.Toggle(&f, req.Label, req.Value)
	case filterActionSelectAll:
		filters.SelectAll(&f, req.Value)
	case filterActionReset:
		filters.Reset(&f)
	case "":
		f.ColumnSelectedValues = filters.SelectedValues(f.CheckboxColumns)
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown action " + req.Action})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filter":  f,
		"visible": filters.MatchItems(f.CheckboxColumns, req.Search),
	})
}

// GET /api/ui-config
func (d *Dashboard) UIConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"debounce_ms":    d.debounce.Milliseconds(),
		"earliest_start": filters.EarliestStart(time.Now()).Format(filters.DateLayout),
		"null_label":     models.NullLabel,
	})
}
