// Package api serves the dashboard page and its JSON API over gin.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig carries the optional pieces of the router.
type RouterConfig struct {
	AllowedOrigins []string
	Metrics        Metrics
}

// NewRouter builds the gin engine for dash.
func NewRouter(dash Dashboard, logger *zap.Logger, cfg RouterConfig) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")
	h := NewHandlers(dash, logger)

	r := gin.New()
	r.SetHTMLTemplate(pageTemplate())
	r.Use(RequestID(), Logger(logger), Recovery(logger), CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(MetricsMiddleware(cfg.Metrics))
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not_found", "route not found")
	})

	r.GET("/", h.Page)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		insights := api.Group("/insights")
		insights.GET("", h.ListInsights)
		insights.GET("/:insight", h.GetInsight)
		insights.GET("/:insight/report.pdf", h.GetReport)
		insights.GET("/:insight/chart.png", h.GetChart)
	}

	return r
}
