package config

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrUnknownEndpoint = errors.New("unknown endpoint")

type Endpoint struct {
	Method string `mapstructure:"method" json:"method"`
	URL    string `mapstructure:"url" json:"url"`
}

// Catalog maps a logical endpoint id to its upstream method and URL.
// Read-only after startup.
type Catalog map[string]Endpoint

func (c Catalog) Resolve(id string) (Endpoint, error) {
	if id == "" {
		return Endpoint{}, fmt.Errorf("%w: empty id", ErrUnknownEndpoint)
	}
	ep, ok := c[id]
	if !ok || strings.TrimSpace(ep.URL) == "" {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, id)
	}
	if ep.Method == "" {
		ep.Method = http.MethodGet
	}
	ep.Method = strings.ToUpper(ep.Method)
	return ep, nil
}
