package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/render"
	"github.com/godilite/ride-insights/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

func pageTemplate() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{"cell": service.FormatValue}).
		ParseFS(templateFS, "templates/*.html"))
}

type pageData struct {
	Section    string
	Sections   []string
	Catalog    []service.CatalogEntry
	Connection service.ConnectionInfo
	Panel      service.Panel
	Chartable  bool
}

// Page renders the single-page dashboard. The sidebar picks HOME or
// Business Insights; ?insight selects one of the ten insights.
func (h *Handlers) Page(c *gin.Context) {
	id := insight.Home
	if raw := c.Query("insight"); raw != "" {
		parsed, err := insight.Parse(raw)
		if err != nil {
			h.respondDomainError(c, err)
			return
		}
		id = parsed
	} else if c.Query("section") == "insights" {
		id = insight.TotalSuccessfulBookings
	}

	panel, err := h.dash.Run(c.Request.Context(), id)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	section := insight.SectionHome
	if id != insight.Home {
		section = insight.SectionInsights
	}
	c.HTML(http.StatusOK, "index.html", pageData{
		Section:    section,
		Sections:   []string{insight.SectionHome, insight.SectionInsights},
		Catalog:    h.dash.Catalog(),
		Connection: h.dash.Connection(),
		Panel:      panel,
		Chartable:  render.Chartable(panel),
	})
}
