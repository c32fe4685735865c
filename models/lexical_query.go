package models

import "encoding/json"

type LexicalAction string

const (
	LexicalActionValidate LexicalAction = "validate"
	LexicalActionSubmit   LexicalAction = "submit"
	LexicalActionGetAll   LexicalAction = "get_all"
	LexicalActionDelete   LexicalAction = "delete"
)

// LexicalQuery: query_name là khoá chính phía server.
type LexicalQuery struct {
	QueryName   string          `json:"query_name"`
	Query       json.RawMessage `json:"query"`
	Description string          `json:"description"`
}

type LexicalQueryRequest struct {
	Action      LexicalAction   `json:"action"`
	Query       json.RawMessage `json:"query"`
	QueryName   string          `json:"query_name"`
	Description string          `json:"description"`
}

type LexicalHitGroup struct {
	Prefix     string  `json:"prefix"`
	Count      float64 `json:"count"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}
