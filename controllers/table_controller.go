package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/filters"
	"github.com/vnkhanh/insights-dashboard/models"
)

// GET /api/tables
func (d *Dashboard) ListTables(c *gin.Context) {
	tables, err := d.client(c).GetTableListing(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

// GET /api/tables/:name/filters
// Trả kèm trạng thái bộ lọc ban đầu cho từng cột.
func (d *Dashboard) GetTableFilters(c *gin.Context) {
	cols, err := d.client(c).GetTableFilters(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	initial := make([]models.ColumnFilter, 0, len(cols))
	for _, col := range cols {
		initial = append(initial, filters.FromColumn(col))
	}
	c.JSON(http.StatusOK, gin.H{"columns": cols, "filterOptions": initial})
}
