package service

import (
	"context"
	"time"

	"github.com/godilite/ride-insights/internal/repository"
)

// QueryExecutor runs fixed query text against the trip store.
type QueryExecutor interface {
	Execute(ctx context.Context, query string) (repository.ResultSet, error)
}

// ConnectionState is implemented by stores that can report a disabled state.
type ConnectionState interface {
	Disabled() bool
	Warning() string
}

// Recorder receives one observation per served insight.
type Recorder interface {
	ObserveInsight(insight, status string, duration time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveInsight(string, string, time.Duration) {}
