package dataservice

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/vnkhanh/insights-dashboard/upload"
)

var _ upload.Store = (*Client)(nil)

// GetNamedValues returns the raw saved list; upload.ParseNamedValues handles
// both the array and the comma-string forms.
func (c *Client) GetNamedValues(ctx context.Context, name string) (json.RawMessage, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid(upload.ErrNameRequired)
	}
	q := url.Values{}
	q.Set("name", name)
	q.Set("user_id", c.session.WebLogin())
	raw, err := c.get(ctx, EndpointGetNamedValues, q)
	if err != nil {
		return nil, err
	}

	var obj map[string]json.RawMessage
	if json.Unmarshal(raw, &obj) == nil {
		for _, k := range []string{"values", "interaction_ids", "ids"} {
			if v, ok := obj[k]; ok {
				return v, nil
			}
		}
	}
	return raw, nil
}

func (c *Client) SaveNamedValues(ctx context.Context, name string, values []string) error {
	if strings.TrimSpace(name) == "" {
		return invalid(upload.ErrNameRequired)
	}
	if values == nil {
		values = []string{}
	}
	_, err := c.post(ctx, EndpointSaveNamedValues, map[string]any{
		"name":    name,
		"user_id": c.session.WebLogin(),
		"values":  values,
	})
	return err
}
