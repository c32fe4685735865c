package dataservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/vnkhanh/insights-dashboard/filters"
	"github.com/vnkhanh/insights-dashboard/models"
)

var (
	ErrPromptRequired     = errors.New("Prompt is required")
	ErrPromptToken        = errors.New("Prompt must reference at least one [column] token")
	ErrEvaluationRequired = errors.New("Evaluation model, provider and prompt are required when evaluation is enabled")
	ErrNoSession          = errors.New("No active session")
)

var promptToken = regexp.MustCompile(`\[[^\[\]]+\]`)

// ValidationError được trả trước khi chạm tới mạng.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(err error) error {
	return &ValidationError{Err: err}
}

// ValidatePrompt checks the prompt carries a [column] placeholder.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrPromptRequired
	}
	if !promptToken.MatchString(prompt) {
		return ErrPromptToken
	}
	return nil
}

// composeFilters runs the reducer over column filters, the date range and any extras.
func (c *Client) composeFilters(columns []models.ColumnFilter, dr *models.DateRangeFilter, extras []models.ExtraFilter) ([]models.FilterOption, error) {
	all := make([]models.ExtraFilter, 0, len(extras)+1)
	if dr != nil {
		norm, err := filters.NormalizeDateRange(*dr, c.now())
		if err != nil && !errors.Is(err, filters.ErrDateClamped) {
			return nil, invalid(err)
		}
		all = append(all, norm.Extra())
	}
	all = append(all, extras...)

	out, err := filters.Reduce(columns, all...)
	if err != nil {
		return nil, invalid(err)
	}
	return out, nil
}

// DateWarnings báo lại điều chỉnh đã áp lên khoảng ngày, vd. start bị kéo về
// mốc một năm trước. Khoảng ngày sai đã bị chặn ở composeFilters.
func (c *Client) DateWarnings(dr *models.DateRangeFilter) []string {
	if dr == nil {
		return nil
	}
	if _, err := filters.NormalizeDateRange(*dr, c.now()); errors.Is(err, filters.ErrDateClamped) {
		return []string{err.Error()}
	}
	return nil
}

// BuildJob chuẩn hoá JobRequest thành Job gửi đi, không gọi mạng.
func (c *Client) BuildJob(req models.JobRequest) (*models.Job, error) {
	if !c.session.CheckSession() {
		return nil, invalid(ErrNoSession)
	}
	if err := ValidatePrompt(req.Prompt); err != nil {
		return nil, invalid(err)
	}
	if req.Evaluation && (req.EvaluationModel == "" || req.EvaluationProvider == "" || strings.TrimSpace(req.EvaluationPrompt) == "") {
		return nil, invalid(ErrEvaluationRequired)
	}

	opts, err := c.composeFilters(req.FilterOptions, req.DateRange, req.Extras)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		RunID:         c.newRunID(),
		TableName:     req.TableName,
		UserID:        c.session.WebLogin(),
		Model:         req.Model,
		Provider:      req.Provider,
		Prompt:        req.Prompt,
		Count:         req.Count,
		Evaluation:    models.EvalFlag(req.Evaluation),
		FilterOptions: opts,
	}
	if req.Evaluation {
		job.EvaluationModel = req.EvaluationModel
		job.EvaluationProvider = req.EvaluationProvider
		job.EvaluationPrompt = req.EvaluationPrompt
	}
	return job, nil
}

// SubmitPromptJob gửi job; run_id do upstream trả về (nếu có) được ưu tiên.
func (c *Client) SubmitPromptJob(ctx context.Context, req models.JobRequest) (*models.Job, error) {
	job, err := c.BuildJob(req)
	if err != nil {
		return nil, err
	}

	raw, err := c.post(ctx, EndpointSubmitJob, job)
	if err != nil {
		return nil, err
	}

	var ack struct {
		RunID string `json:"run_id"`
	}
	if json.Unmarshal(raw, &ack) == nil && ack.RunID != "" {
		job.RunID = ack.RunID
	}
	return job, nil
}

func (c *Client) SubmitRowCountRequest(ctx context.Context, req models.RowCountRequest) (int64, error) {
	opts, err := c.composeFilters(req.FilterOptions, req.DateRange, req.Extras)
	if err != nil {
		return 0, err
	}

	raw, err := c.post(ctx, EndpointRowCount, map[string]any{
		"table_name":    req.TableName,
		"filterOptions": opts,
	})
	if err != nil {
		return 0, err
	}
	return parseCount(raw)
}

// parseCount chấp nhận số trần, chuỗi số, hoặc object {count|row_count}.
func parseCount(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return numberToInt(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return numberToInt(json.Number(strings.TrimSpace(s)))
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, k := range []string{"count", "row_count", "total"} {
			if v, ok := obj[k]; ok {
				return parseCount(v)
			}
		}
	}
	return 0, newError(http.StatusBadGateway, "row-count: unexpected response")
}

func numberToInt(n json.Number) (int64, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, newError(http.StatusBadGateway, "row-count: unexpected response")
	}
	return int64(f), nil
}

func (c *Client) CancelJob(ctx context.Context, runID string) (json.RawMessage, error) {
	if runID == "" {
		return nil, invalid(errors.New("run_id is required"))
	}
	return c.post(ctx, EndpointCancelJob, map[string]string{
		"run_id":  runID,
		"user_id": c.session.WebLogin(),
	})
}

func (c *Client) ViewStatus(ctx context.Context) ([]models.JobSummary, error) {
	q := url.Values{}
	q.Set("user_id", c.session.WebLogin())
	raw, err := c.get(ctx, EndpointViewStatus, q)
	if err != nil {
		return nil, err
	}
	out := []models.JobSummary{}
	if err := decodeInto(raw, EndpointViewStatus, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ViewResults(ctx context.Context, runID string) (models.ResultSet, error) {
	return c.resultSet(ctx, EndpointViewResults, runID)
}

func (c *Client) ViewSummary(ctx context.Context, runID string) (models.ResultSet, error) {
	return c.resultSet(ctx, EndpointViewSummary, runID)
}

func (c *Client) resultSet(ctx context.Context, id, runID string) (models.ResultSet, error) {
	if runID == "" {
		return models.ResultSet{}, invalid(errors.New("run_id is required"))
	}
	q := url.Values{}
	q.Set("run_id", runID)
	raw, err := c.get(ctx, id, q)
	if err != nil {
		return models.ResultSet{}, err
	}
	return ParseResultSet(raw)
}

// ParseResultSet accepts an array of rows, {columns, rows}, or a columnar
// object {col: [v0, v1, ...]}.
func ParseResultSet(raw json.RawMessage) (models.ResultSet, error) {
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err == nil {
		return models.ResultSet{Rows: rows}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return models.ResultSet{}, newError(http.StatusBadGateway, "results: unexpected response")
	}
	if _, ok := obj["rows"]; ok {
		var rs models.ResultSet
		if err := json.Unmarshal(raw, &rs); err != nil {
			return models.ResultSet{}, newError(http.StatusBadGateway, "results: unexpected response")
		}
		return rs, nil
	}

	cols := map[string][]any{}
	n := 0
	for k, v := range obj {
		var vals []any
		if err := json.Unmarshal(v, &vals); err != nil {
			return models.ResultSet{}, newError(http.StatusBadGateway, "results: unexpected response")
		}
		cols[k] = vals
		if len(vals) > n {
			n = len(vals)
		}
	}
	rs := models.ResultSet{Rows: make([]map[string]any, n)}
	for i := 0; i < n; i++ {
		row := map[string]any{}
		for k, vals := range cols {
			if i < len(vals) {
				row[k] = vals[i]
			}
		}
		rs.Rows[i] = row
	}
	return rs, nil
}

type SummaryJobRequest struct {
	RunID    string `json:"run_id" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Provider string `json:"provider" binding:"required"`
	Prompt   string `json:"prompt" binding:"required"`
}

func (c *Client) SubmitSummaryJob(ctx context.Context, req SummaryJobRequest) (json.RawMessage, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, invalid(ErrPromptRequired)
	}
	return c.post(ctx, EndpointSubmitSummaryJob, map[string]string{
		"run_id":   req.RunID,
		"user_id":  c.session.WebLogin(),
		"model":    req.Model,
		"provider": req.Provider,
		"prompt":   req.Prompt,
	})
}

func (c *Client) GetModelList(ctx context.Context) ([]models.AIModel, error) {
	raw, err := c.get(ctx, EndpointModelList, nil)
	if err != nil {
		return nil, err
	}
	out := []models.AIModel{}
	if err := decodeInto(raw, EndpointModelList, &out); err != nil {
		return nil, err
	}
	return out, nil
}
