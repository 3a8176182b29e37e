package grpc

import (
	"context"

	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/service"
)

type InsightService interface {
	Catalog() []service.CatalogEntry
	Connection() service.ConnectionInfo
	Run(ctx context.Context, id insight.ID) (service.Panel, error)
}
