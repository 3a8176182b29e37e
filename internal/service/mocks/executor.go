package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/godilite/ride-insights/internal/repository"
)

// MockQueryExecutor is a mock implementation of the QueryExecutor interface
// for testing the service layer.
type MockQueryExecutor struct {
	ExecuteFunc func(ctx context.Context, query string) (repository.ResultSet, error)
	Calls       []string
}

// Execute implements the QueryExecutor interface
func (m *MockQueryExecutor) Execute(ctx context.Context, query string) (repository.ResultSet, error) {
	m.Calls = append(m.Calls, query)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return repository.ResultSet{}, errors.New("ExecuteFunc not implemented")
}

// MockRecorder captures insight observations.
type MockRecorder struct {
	Observations []Observation
}

type Observation struct {
	Insight string
	Status  string
}

func (m *MockRecorder) ObserveInsight(insight, status string, _ time.Duration) {
	m.Observations = append(m.Observations, Observation{Insight: insight, Status: status})
}
