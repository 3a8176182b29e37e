package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/render"
	"github.com/godilite/ride-insights/internal/service"
	"go.uber.org/zap"
)

// Handlers serves the dashboard routes.
type Handlers struct {
	dash   Dashboard
	logger *zap.Logger
}

// NewHandlers initializes the HTTP handlers.
func NewHandlers(dash Dashboard, logger *zap.Logger) *Handlers {
	if dash == nil {
		panic("nil Dashboard provided to NewHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{dash: dash, logger: logger}
}

type catalogResponse struct {
	Insights   []service.CatalogEntry `json:"insights"`
	Connection service.ConnectionInfo `json:"connection"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Warning  string `json:"warning,omitempty"`
}

// Health reports liveness and whether the store is connected.
func (h *Handlers) Health(c *gin.Context) {
	conn := h.dash.Connection()
	resp := healthResponse{Status: "ok", Database: "connected"}
	if !conn.Connected {
		resp.Database = "disabled"
		resp.Warning = conn.Warning
	}
	c.JSON(http.StatusOK, resp)
}

// ListInsights returns the Business Insights menu.
func (h *Handlers) ListInsights(c *gin.Context) {
	c.JSON(http.StatusOK, catalogResponse{
		Insights:   h.dash.Catalog(),
		Connection: h.dash.Connection(),
	})
}

// GetInsight runs one insight and returns its panel.
func (h *Handlers) GetInsight(c *gin.Context) {
	panel, ok := h.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, panel)
}

// GetReport returns the panel as a PDF attachment.
func (h *Handlers) GetReport(c *gin.Context) {
	panel, ok := h.run(c)
	if !ok {
		return
	}

	data, filename, err := render.PDF(panel)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// GetChart returns the panel as a PNG bar chart.
func (h *Handlers) GetChart(c *gin.Context) {
	panel, ok := h.run(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.BarChart(&buf, panel); err != nil {
		h.respondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handlers) run(c *gin.Context) (service.Panel, bool) {
	id, err := insight.Parse(c.Param("insight"))
	if err != nil {
		h.respondDomainError(c, err)
		return service.Panel{}, false
	}

	panel, err := h.dash.Run(c.Request.Context(), id)
	if err != nil {
		h.respondDomainError(c, err)
		return service.Panel{}, false
	}
	return panel, true
}
