package dataservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/vnkhanh/insights-dashboard/models"
)

var (
	ErrInvalidLexicalQuery = errors.New("Query must be a valid JSON object")
	ErrQueryNameRequired   = errors.New("Query name is required")
)

// NormalizeLexicalQuery round-trips the query through JSON; only objects pass.
func NormalizeLexicalQuery(q json.RawMessage) (json.RawMessage, error) {
	var obj map[string]any
	if err := json.Unmarshal(q, &obj); err != nil || obj == nil {
		return nil, ErrInvalidLexicalQuery
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, ErrInvalidLexicalQuery
	}
	return b, nil
}

func (c *Client) lexical(ctx context.Context, id string, action models.LexicalAction, q models.LexicalQuery) (json.RawMessage, error) {
	return c.post(ctx, id, models.LexicalQueryRequest{
		Action:      action,
		Query:       q.Query,
		QueryName:   q.QueryName,
		Description: q.Description,
	})
}

// ValidateLexicalQuery: kiểm tra JSON tại chỗ trước, rồi để server kiểm schema.
func (c *Client) ValidateLexicalQuery(ctx context.Context, q models.LexicalQuery) (json.RawMessage, error) {
	norm, err := NormalizeLexicalQuery(q.Query)
	if err != nil {
		return nil, invalid(err)
	}
	q.Query = norm
	return c.lexical(ctx, EndpointValidateLexical, models.LexicalActionValidate, q)
}

// SubmitLexicalQuery validates remotely first, then persists.
func (c *Client) SubmitLexicalQuery(ctx context.Context, q models.LexicalQuery) (json.RawMessage, error) {
	if strings.TrimSpace(q.QueryName) == "" {
		return nil, invalid(ErrQueryNameRequired)
	}
	if _, err := c.ValidateLexicalQuery(ctx, q); err != nil {
		return nil, err
	}
	norm, _ := NormalizeLexicalQuery(q.Query)
	q.Query = norm
	return c.lexical(ctx, EndpointSubmitLexical, models.LexicalActionSubmit, q)
}

func (c *Client) GetAllLexicalQueries(ctx context.Context) ([]models.LexicalQuery, error) {
	raw, err := c.lexical(ctx, EndpointGetAllLexical, models.LexicalActionGetAll, models.LexicalQuery{})
	if err != nil {
		return nil, err
	}
	out := []models.LexicalQuery{}
	if err := decodeInto(raw, EndpointGetAllLexical, &out); err != nil {
		return nil, err
	}
	// query có thể bị stringify thêm một lần nữa
	for i := range out {
		var s string
		if json.Unmarshal(out[i].Query, &s) == nil && json.Valid([]byte(s)) {
			out[i].Query = json.RawMessage(s)
		}
	}
	return out, nil
}

// GetLexicalQuery returns the saved query named name from the full listing.
func (c *Client) GetLexicalQuery(ctx context.Context, name string) (*models.LexicalQuery, error) {
	all, err := c.GetAllLexicalQueries(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].QueryName == name {
			return &all[i], nil
		}
	}
	return nil, &Error{Message: "Lexical query not found: " + name, Status: http.StatusNotFound}
}

func (c *Client) DeleteLexicalQuery(ctx context.Context, name string) (json.RawMessage, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid(ErrQueryNameRequired)
	}
	return c.lexical(ctx, EndpointDeleteLexical, models.LexicalActionDelete, models.LexicalQuery{QueryName: name})
}

func (c *Client) GetLexicalQueryHits(ctx context.Context, q models.LexicalQuery) ([]models.LexicalHitGroup, error) {
	raw, err := c.post(ctx, EndpointLexicalHits, map[string]any{
		"query":      q.Query,
		"query_name": q.QueryName,
		"user_id":    c.session.WebLogin(),
	})
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := decodeInto(raw, EndpointLexicalHits, &data); err != nil {
		return nil, err
	}
	return GroupLexicalHits(data), nil
}

// GroupLexicalHits gom các khoá <prefix>_hit_count, <prefix>_total_count,
// <prefix>_percentage theo phần trước dấu "_" đầu tiên.
func GroupLexicalHits(data map[string]any) []models.LexicalHitGroup {
	groups := map[string]*models.LexicalHitGroup{}
	for k, v := range data {
		i := strings.IndexByte(k, '_')
		if i <= 0 {
			continue
		}
		n, ok := toFloat(v)
		if !ok {
			continue
		}
		prefix, field := k[:i], k[i+1:]
		g, ok := groups[prefix]
		if !ok {
			g = &models.LexicalHitGroup{Prefix: prefix}
			groups[prefix] = g
		}
		switch {
		case strings.HasPrefix(field, "hit"):
			g.Count = n
		case strings.HasPrefix(field, "total"):
			g.Total = n
		case strings.HasPrefix(field, "percent"):
			g.Percentage = n
		}
	}

	out := make([]models.LexicalHitGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
