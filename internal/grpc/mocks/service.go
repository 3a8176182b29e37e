package mocks

import (
	"context"
	"errors"

	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/service"
)

// MockDashboardService is a mock implementation of the dashboard service
// for testing the transport layers. It uses function-based mocking for flexibility.
type MockDashboardService struct {
	CatalogFunc    func() []service.CatalogEntry
	ConnectionFunc func() service.ConnectionInfo
	RunFunc        func(ctx context.Context, id insight.ID) (service.Panel, error)
}

// Catalog returns CatalogFunc's result or an empty menu.
func (m *MockDashboardService) Catalog() []service.CatalogEntry {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return nil
}

// Connection returns ConnectionFunc's result or a connected state.
func (m *MockDashboardService) Connection() service.ConnectionInfo {
	if m.ConnectionFunc != nil {
		return m.ConnectionFunc()
	}
	return service.ConnectionInfo{Connected: true}
}

// Run implements the dashboard Run operation
func (m *MockDashboardService) Run(ctx context.Context, id insight.ID) (service.Panel, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, id)
	}
	return service.Panel{}, errors.New("RunFunc not implemented")
}
