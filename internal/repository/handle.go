package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dbbuilder "github.com/godilite/ride-insights/pkg/database"
	"go.uber.org/zap"
)

// ErrNoConnection is returned by Execute when the handle is disabled.
var ErrNoConnection = errors.New("no database connection")

// Handle owns the single connection resource to the trip store.
// A Handle is either connected or disabled and never changes state.
type Handle struct {
	db      *sql.DB
	logger  *zap.Logger
	warning string
}

// Open attempts one connection. On failure it returns a disabled handle
// carrying a user-visible warning instead of an error.
func Open(ctx context.Context, logger *zap.Logger, opts ...dbbuilder.Option) *Handle {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("repository")

	db, err := dbbuilder.New(ctx, opts...)
	if err != nil {
		logger.Warn("database unavailable, running without a connection", zap.Error(err))
		return &Handle{
			logger:  logger,
			warning: fmt.Sprintf("Could not connect to the database: %v", err),
		}
	}

	logger.Info("database connection established")
	return &Handle{db: db, logger: logger}
}

// NewHandle wraps an existing pool. A nil db yields a disabled handle.
func NewHandle(db *sql.DB, logger *zap.Logger) *Handle {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handle{db: db, logger: logger.Named("repository")}
	if db == nil {
		h.warning = "Could not connect to the database: no connection configured"
	}
	return h
}

// Disabled reports whether the handle has no usable connection.
func (h *Handle) Disabled() bool {
	return h == nil || h.db == nil
}

// Warning is the message recorded when initialization failed.
func (h *Handle) Warning() string {
	if h == nil {
		return ""
	}
	return h.warning
}

// Execute runs the literal query text and returns every row.
func (h *Handle) Execute(ctx context.Context, query string) (ResultSet, error) {
	if h.Disabled() {
		return ResultSet{}, ErrNoConnection
	}

	rows, err := h.db.QueryContext(ctx, query)
	if err != nil {
		return ResultSet{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	rs, err := collect(rows)
	if err != nil {
		return ResultSet{}, err
	}

	h.logger.Debug("query executed", zap.Int("rows", rs.Len()))
	return rs, nil
}

// Ping checks the connection without reconnecting.
func (h *Handle) Ping(ctx context.Context) error {
	if h.Disabled() {
		return ErrNoConnection
	}
	return h.db.PingContext(ctx)
}

// Close releases the connection. Closing a disabled handle is a no-op.
func (h *Handle) Close() error {
	if h.Disabled() {
		return nil
	}
	return h.db.Close()
}
