package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	JobStatusSubmitted  = "Submitted"
	JobStatusInProgress = "In Progress"
	JobStatusCompleted  = "Completed"
	JobStatusCancelled  = "Cancelled"
)

// EvalFlag được gửi lên backend dưới dạng chuỗi "true"/"false".
type EvalFlag bool

func (e EvalFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatBool(bool(e)))
}

func (e *EvalFlag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*e = false
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*e = EvalFlag(v)
	return nil
}

type Job struct {
	RunID              string         `json:"run_id"`
	TableName          string         `json:"table_name"`
	UserID             string         `json:"user_id"`
	Model              string         `json:"model"`
	Provider           string         `json:"provider"`
	Prompt             string         `json:"prompt"`
	Count              int64          `json:"count"`
	Evaluation         EvalFlag       `json:"evaluation"`
	EvaluationModel    string         `json:"evaluation_model"`
	EvaluationProvider string         `json:"evaluation_provider"`
	EvaluationPrompt   string         `json:"evaluation_prompt"`
	FilterOptions      []FilterOption `json:"filterOptions"`
}

// JobRequest là những gì UI gửi khi bấm submit, trước khi qua bộ reducer.
type JobRequest struct {
	TableName          string           `json:"table_name" binding:"required"`
	Model              string           `json:"model" binding:"required"`
	Provider           string           `json:"provider" binding:"required"`
	Prompt             string           `json:"prompt" binding:"required"`
	Count              int64            `json:"count"`
	Evaluation         bool             `json:"evaluation"`
	EvaluationModel    string           `json:"evaluation_model"`
	EvaluationProvider string           `json:"evaluation_provider"`
	EvaluationPrompt   string           `json:"evaluation_prompt"`
	FilterOptions      []ColumnFilter   `json:"filterOptions"`
	DateRange          *DateRangeFilter `json:"date_range,omitempty"`
	Extras             []ExtraFilter    `json:"extras,omitempty"`
}

type RowCountRequest struct {
	TableName     string           `json:"table_name" binding:"required"`
	FilterOptions []ColumnFilter   `json:"filterOptions"`
	DateRange     *DateRangeFilter `json:"date_range,omitempty"`
	Extras        []ExtraFilter    `json:"extras,omitempty"`
}

type JobSummary struct {
	RunID       string `json:"run_id"`
	TableName   string `json:"table_name"`
	UserID      string `json:"user_id"`
	Model       string `json:"model"`
	Provider    string `json:"provider"`
	Prompt      string `json:"prompt"`
	Count       int64  `json:"count"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at,omitempty"`
}

// ResultSet là dữ liệu kết quả dạng cột trả về từ view-results / view-summary.
type ResultSet struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}
