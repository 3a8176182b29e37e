package api

import (
	"context"
	"net/http"
	"time"

	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/service"
)

// Dashboard is the service the HTTP surface renders.
type Dashboard interface {
	Catalog() []service.CatalogEntry
	Connection() service.ConnectionInfo
	Run(ctx context.Context, id insight.ID) (service.Panel, error)
}

// Metrics records HTTP traffic and exposes the scrape endpoint.
type Metrics interface {
	RecordHTTPRequest(endpoint, method string, statusCode int, duration time.Duration)
	Handler() http.Handler
}
