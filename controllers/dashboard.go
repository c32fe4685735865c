package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/config"
	"github.com/vnkhanh/insights-dashboard/dataservice"
	"github.com/vnkhanh/insights-dashboard/middleware"
	"github.com/vnkhanh/insights-dashboard/upload"
)

// Dashboard gom các handler phía server của trang dashboard. Mọi lời gọi
// xuống backend đều đi qua proxy /api/aws/:id bằng dataservice.Client.
type Dashboard struct {
	proxyBase  string
	cookieName string
	httpClient *http.Client
	guard      *dataservice.SubmitGuard
	debounce   time.Duration
}

func NewDashboard(cfg *config.Config, hc *http.Client) *Dashboard {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Proxy.Timeout()}
	}
	return &Dashboard{
		proxyBase:  cfg.Proxy.BaseURL,
		cookieName: cfg.Auth.CookieName,
		httpClient: hc,
		guard:      &dataservice.SubmitGuard{},
		debounce:   cfg.DebounceWindow(),
	}
}

func (d *Dashboard) client(c *gin.Context) *dataservice.Client {
	return dataservice.New(d.proxyBase, middleware.SessionFrom(c),
		dataservice.WithHTTPClient(d.httpClient),
		dataservice.WithAuthCookie(d.cookieName, middleware.AuthTokenFrom(c)),
	)
}

// respondError: lỗi validate -> 422, lỗi upstream -> giữ 4xx, còn lại 502. Body luôn là {error}.
func respondError(c *gin.Context, err error) {
	var ve *dataservice.ValidationError
	if errors.As(err, &ve) || errors.Is(err, upload.ErrNameRequired) || errors.Is(err, upload.ErrNotCSV) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	e := dataservice.AsError(err)
	status := e.Status
	if status < 400 || status >= 500 {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": e.Message})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid payload: " + err.Error()})
}
