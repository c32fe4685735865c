package routes

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/config"
	"github.com/vnkhanh/insights-dashboard/controllers"
	"github.com/vnkhanh/insights-dashboard/middleware"
	"github.com/vnkhanh/insights-dashboard/static"
)

// SetupRoutes gắn toàn bộ route. upstream là client dùng cho proxy (nil = mặc định theo config).
// ctx giới hạn vòng đời các goroutine nền (rate limiter).
func SetupRoutes(ctx context.Context, r *gin.Engine, cfg *config.Config, upstream *http.Client) {
	if upstream == nil {
		upstream = &http.Client{Timeout: cfg.Proxy.Timeout()}
	}

	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	templates, err := fs.Sub(static.FS, "templates")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static/templates", http.FS(templates))

	proxy := controllers.NewProxyController(cfg.Catalog(), cfg.Auth.CookieName, upstream)
	dash := controllers.NewDashboard(cfg, nil)
	submitLimiter := middleware.NewKeyRateLimiter(ctx, cfg.RateLimit.SubmitPerMinute, cfg.RateLimit.SubmitBurst, 5*time.Minute)

	api := r.Group("/api")
	{
		api.GET("/healthcheck", controllers.HealthCheck)

		// proxy không tự kiểm tra đăng nhập, upstream sẽ làm việc đó
		api.Any("/aws/:id", proxy.Forward)

		protected := api.Group("/")
		protected.Use(middleware.AuthSSO(cfg.Auth.CookieName, cfg.Auth.JWTSecret))
		{
			protected.GET("/session", controllers.GetSession)
			protected.GET("/models", dash.ListModels)
			protected.GET("/ui-config", dash.UIConfig)
			protected.POST("/filters/apply", controllers.ApplyFilterAction)
		}

		tables := protected.Group("/tables")
		{
			tables.GET("", dash.ListTables)
			tables.GET("/:name/filters", dash.GetTableFilters)
		}

		protected.POST("/row-count", dash.RowCount)

		jobs := protected.Group("/jobs")
		{
			jobs.GET("", dash.ListJobs)
			jobs.POST("", middleware.RateLimitSubmit(submitLimiter), dash.SubmitJob)
			jobs.POST("/:run_id/cancel", dash.CancelJob)
			jobs.GET("/:run_id/results", dash.GetResults)
			jobs.GET("/:run_id/results/download", dash.DownloadResults)
			jobs.GET("/:run_id/summary", dash.GetSummary)
			jobs.POST("/:run_id/summary", middleware.RateLimitSubmit(submitLimiter), dash.SubmitSummary)
		}

		lexical := protected.Group("/lexical-queries")
		{
			lexical.GET("", dash.ListLexicalQueries)
			lexical.POST("", dash.SaveLexicalQuery)
			lexical.POST("/validate", dash.ValidateLexicalQuery)
			lexical.POST("/hits", dash.LexicalQueryHits)
			lexical.GET("/:name", dash.GetLexicalQuery)
			lexical.DELETE("/:name", dash.DeleteLexicalQuery)
		}

		idLists := protected.Group("/id-lists")
		{
			idLists.POST("", dash.SaveIDList)
			idLists.DELETE("", dash.ClearIDList)
			idLists.POST("/upload", dash.UploadIDList)
			idLists.POST("/paste", dash.PasteIDList)
			idLists.GET("/:name", dash.LoadIDList)
		}
	}
}
