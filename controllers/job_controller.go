package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/dataservice"
	"github.com/vnkhanh/insights-dashboard/middleware"
	"github.com/vnkhanh/insights-dashboard/models"
	"github.com/vnkhanh/insights-dashboard/utils"
)

// POST /api/jobs
func (d *Dashboard) SubmitJob(c *gin.Context) {
	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	client := d.client(c)
	key := dataservice.SubmitKey(middleware.SessionFrom(c).WebLogin(), req)
	// lời gọi dùng chung không được chết theo request đầu tiên
	ctx := context.WithoutCancel(c.Request.Context())
	v, err, _ := d.guard.Do(key, func() (any, error) {
		return client.SubmitPromptJob(ctx, req)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, submitResponse{
		Job:      v.(*models.Job),
		Warnings: client.DateWarnings(req.DateRange),
	})
}

type submitResponse struct {
	*models.Job
	Warnings []string `json:"warnings,omitempty"`
}

// POST /api/row-count
func (d *Dashboard) RowCount(c *gin.Context) {
	var req models.RowCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	client := d.client(c)
	n, err := client.SubmitRowCountRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"table_name": req.TableName, "count": n}
	if w := client.DateWarnings(req.DateRange); len(w) > 0 {
		resp["warnings"] = w
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/jobs/:run_id/cancel
// Chỉ yêu cầu backend đánh dấu huỷ, không huỷ request nào đang chạy.
func (d *Dashboard) CancelJob(c *gin.Context) {
	data, err := d.client(c).CancelJob(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": c.Param("run_id"), "result": data})
}

// GET /api/jobs
func (d *Dashboard) ListJobs(c *gin.Context) {
	jobs, err := d.client(c).ViewStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GET /api/jobs/:run_id/results
func (d *Dashboard) GetResults(c *gin.Context) {
	rs, err := d.client(c).ViewResults(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// GET /api/jobs/:run_id/summary
func (d *Dashboard) GetSummary(c *gin.Context) {
	rs, err := d.client(c).ViewSummary(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// POST /api/jobs/:run_id/summary
func (d *Dashboard) SubmitSummary(c *gin.Context) {
	var req dataservice.SummaryJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.RunID = c.Param("run_id")

	data, err := d.client(c).SubmitSummaryJob(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"run_id": req.RunID, "result": data})
}

// GET /api/jobs/:run_id/results/download?format=csv|xlsx
func (d *Dashboard) DownloadResults(c *gin.Context) {
	runID := c.Param("run_id")
	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}

	rs, err := d.client(c).ViewResults(c.Request.Context(), runID)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("results_%s.%s", runID, format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if format == "xlsx" {
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Status(http.StatusOK)
		if err := utils.WriteResultsXLSX(c.Writer, rs); err != nil {
			_ = c.Error(err)
		}
		return
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := utils.WriteResultsCSV(c.Writer, rs); err != nil {
		_ = c.Error(err)
	}
}

// GET /api/models
func (d *Dashboard) ListModels(c *gin.Context) {
	list, err := d.client(c).GetModelList(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": list})
}
