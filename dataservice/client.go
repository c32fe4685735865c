package dataservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vnkhanh/insights-dashboard/session"
)

// Logical endpoint ids understood by the proxy.
const (
	EndpointTableListing     = "table-listing"
	EndpointTableFilters     = "table-filters"
	EndpointRowCount         = "row-count"
	EndpointSubmitJob        = "submit-job"
	EndpointCancelJob        = "cancel-job"
	EndpointViewStatus       = "view-status"
	EndpointViewResults      = "view-results"
	EndpointViewSummary      = "view-summary"
	EndpointSubmitSummaryJob = "submit-summary-job"
	EndpointValidateLexical  = "validate-lexical-query"
	EndpointSubmitLexical    = "submit-lexical-query"
	EndpointGetAllLexical    = "get-all-lexical-queries"
	EndpointDeleteLexical    = "delete-lexical-query"
	EndpointLexicalHits      = "get-lexical-query-hits"
	EndpointModelList        = "dynamic-model-list"
	EndpointGetNamedValues   = "gdlh_get_interaction_ids"
	EndpointSaveNamedValues  = "gdlh_save_interaction_ids"
)

const HeaderWebLogin = "weblogin"

// Client gọi proxy /api/aws/:id thay cho trình duyệt. Mỗi request tạo một Client
// mới với session và token của chính request đó.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	cookieName string
	authToken  string
	now        func() time.Time
	newRunID   func() string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthCookie forwards the caller's SSO token so the proxy can inject it upstream.
func WithAuthCookie(name, token string) Option {
	return func(c *Client) {
		c.cookieName = name
		c.authToken = token
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func WithRunIDFunc(fn func() string) Option {
	return func(c *Client) { c.newRunID = fn }
}

func New(baseURL string, sess *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		session:    sess,
		now:        time.Now,
		newRunID:   func() string { return uuid.New().String() },
	}
	if c.session == nil {
		c.session = session.New()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *session.Store { return c.session }

func (c *Client) get(ctx context.Context, id string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, id, query, nil)
}

func (c *Client) post(ctx context.Context, id string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, id, nil, body)
}

// do never panics and always converts failures to *Error.
func (c *Client) do(ctx context.Context, method, id string, query url.Values, body any) (json.RawMessage, error) {
	target := c.baseURL + "/" + url.PathEscape(id)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, newError(http.StatusBadRequest, fmt.Sprintf("encode %s request: %v", id, err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, fmt.Sprintf("build %s request: %v", id, err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderWebLogin, c.session.WebLogin())
	if c.authToken != "" && c.cookieName != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: c.authToken})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(http.StatusBadGateway, fmt.Sprintf("%s: %v", id, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(http.StatusBadGateway, fmt.Sprintf("%s: read response: %v", id, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newError(resp.StatusCode, upstreamMessage(raw))
	}

	return DecodeEnvelope(raw)
}

// upstreamMessage lấy thông báo lỗi từ {error}, {errorMessage}, {message} hoặc text thô.
func upstreamMessage(raw []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, k := range []string{"error", "errorMessage", "message"} {
			if s, ok := obj[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(raw))
}

// decodeInto giữ số dạng json.Number để ID lớn hơn 2^53 không bị làm tròn.
func decodeInto(raw json.RawMessage, id string, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return newError(http.StatusBadGateway, fmt.Sprintf("%s: unexpected response: %v", id, err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return newError(http.StatusBadGateway, fmt.Sprintf("%s: unexpected trailing data", id))
	}
	return nil
}

// AsError chuẩn hoá mọi lỗi về *Error để controller trả {error}.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Message: err.Error(), Status: http.StatusInternalServerError}
}
