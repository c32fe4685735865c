package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/config"
	"github.com/vnkhanh/insights-dashboard/middleware"
)

const AuthScheme = "sso-jwt"

// header không chuyển tiếp lên upstream
var skipHeaders = map[string]struct{}{
	"Host":              {},
	"Content-Length":    {},
	"Connection":        {},
	"Accept-Encoding":   {},
	"Authorization":     {},
	"Keep-Alive":        {},
	"Transfer-Encoding": {},
	"Upgrade":           {},
}

type ProxyController struct {
	catalog    config.Catalog
	cookieName string
	client     *http.Client
}

func NewProxyController(catalog config.Catalog, cookieName string, client *http.Client) *ProxyController {
	if client == nil {
		client = http.DefaultClient
	}
	return &ProxyController{catalog: catalog, cookieName: cookieName, client: client}
}

// Forward: /api/aws/:id -> URL upstream tra từ catalog, kèm Authorization lấy từ cookie.
// Không kiểm tra đăng nhập ở đây; upstream tự từ chối nếu thiếu token.
func (p *ProxyController) Forward(c *gin.Context) {
	reqID := middleware.RequestIDFrom(c)
	id := c.Param("id")

	ep, err := p.catalog.Resolve(id)
	if err != nil {
		log.Printf("[proxy] %s unknown endpoint %q", reqID, id)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown endpoint: " + id})
		return
	}

	target := ep.URL
	var body io.Reader
	if ep.Method == http.MethodPost {
		b, err := reencodeJSON(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be valid JSON"})
			return
		}
		if b != nil {
			body = bytes.NewReader(b)
		}
	} else if q := c.Request.URL.Query(); len(q) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + q.Encode()
	}

	out, err := http.NewRequestWithContext(c.Request.Context(), ep.Method, target, body)
	if err != nil {
		log.Printf("[proxy] %s build request %s: %v", reqID, target, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	for k, vals := range c.Request.Header {
		if _, skip := skipHeaders[http.CanonicalHeaderKey(k)]; skip {
			continue
		}
		for _, v := range vals {
			out.Header.Add(k, v)
		}
	}
	if ep.Method == http.MethodPost {
		out.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.Cookie(p.cookieName); err == nil && token != "" {
		out.Header.Set("Authorization", AuthScheme+" "+token)
	}

	log.Printf("[proxy] %s %s %s -> %s", reqID, ep.Method, id, target)

	resp, err := p.client.Do(out)
	if err != nil {
		log.Printf("[proxy] %s upstream error: %v", reqID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach upstream service"})
		return
	}
	defer resp.Body.Close()

	data, err := parseUpstreamBody(resp)
	if err != nil {
		status := resp.StatusCode
		if status < 400 {
			status = http.StatusInternalServerError
		}
		log.Printf("[proxy] %s %s: parse response: %v", reqID, id, err)
		c.JSON(status, gin.H{"error": "Failed to parse response body"})
		return
	}

	log.Printf("[proxy] %s %s <- %d", reqID, id, resp.StatusCode)
	if resp.StatusCode == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(resp.StatusCode, data)
}

// reencodeJSON trả nil nếu body rỗng.
func reencodeJSON(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	v, err := decodeJSON(raw)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// decodeJSON giữ nguyên số lớn (json.Number) thay vì ép về float64.
func decodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

var errJSONBody = errors.New("upstream declared JSON but body is not valid JSON")

// parseUpstreamBody: JSON thì parse; ngược lại coi là text, thử parse JSON, không được thì giữ text.
func parseUpstreamBody(resp *http.Response) (any, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)

	if strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "json") {
		if len(trimmed) == 0 {
			return nil, nil
		}
		v, err := decodeJSON(trimmed)
		if err != nil {
			return nil, errJSONBody
		}
		return v, nil
	}

	if len(trimmed) > 0 {
		if v, err := decodeJSON(trimmed); err == nil {
			return v, nil
		}
	}
	return string(raw), nil
}
