package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultQueryTimeout = 5 * time.Second
)

// DashboardService resolves menu selections and turns query results into panels.
type DashboardService struct {
	store        QueryExecutor
	logger       *zap.Logger
	recorder     Recorder
	queryTimeout time.Duration
}

type Option func(*DashboardService)

func WithRecorder(r Recorder) Option {
	return func(s *DashboardService) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithQueryTimeout(d time.Duration) Option {
	return func(s *DashboardService) {
		if d > 0 {
			s.queryTimeout = d
		}
	}
}

// NewDashboardService creates a DashboardService over store.
func NewDashboardService(store QueryExecutor, logger *zap.Logger, opts ...Option) *DashboardService {
	if store == nil {
		panic("store must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	s := &DashboardService{
		store:        store,
		logger:       logger.Named("dashboard"),
		recorder:     nopRecorder{},
		queryTimeout: defaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog lists the Business Insights menu.
func (s *DashboardService) Catalog() []CatalogEntry {
	ids := insight.Insights()
	out := make([]CatalogEntry, len(ids))
	for i, id := range ids {
		out[i] = CatalogEntry{Number: int(id), Slug: id.Slug(), Label: id.Label()}
	}
	return out
}

// Connection reports whether the store is usable.
func (s *DashboardService) Connection() ConnectionInfo {
	state, ok := s.store.(ConnectionState)
	if !ok {
		return ConnectionInfo{Connected: true}
	}
	return ConnectionInfo{Connected: !state.Disabled(), Warning: state.Warning()}
}

// Run serves one menu selection. It executes at most one query and only
// fails for selections outside the menu; store problems are reported on the panel.
func (s *DashboardService) Run(ctx context.Context, id insight.ID) (Panel, error) {
	plan, err := insight.Resolve(id)
	if err != nil {
		return Panel{}, err
	}

	panel := Panel{
		Insight: plan.ID,
		Slug:    plan.ID.Slug(),
		Title:   plan.Title,
		Layout:  plan.Layout.String(),
	}

	if !plan.HasQuery() {
		home := insight.HomePage()
		panel.Home = &home
		panel.Status = StatusOK
		return panel, nil
	}

	dbCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	start := time.Now()
	rs, err := s.store.Execute(dbCtx, plan.Query)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, repository.ErrNoConnection):
		panel.Status = StatusNoConnection
		panel.Notice = NoticeNoConnection
	case err != nil:
		s.logger.Error("insight query failed",
			zap.String("insight", panel.Slug),
			zap.Error(err))
		panel.Status = StatusError
		panel.Notice = fmt.Sprintf("Query failed: %v", err)
	default:
		build(&panel, plan, rs)
	}

	s.recorder.ObserveInsight(panel.Slug, string(panel.Status), elapsed)
	s.logger.Info("insight served",
		zap.String("insight", panel.Slug),
		zap.String("status", string(panel.Status)),
		zap.Int("rows", rs.Len()),
		zap.Duration("elapsed", elapsed))

	return panel, nil
}

func build(panel *Panel, plan insight.Plan, rs repository.ResultSet) {
	if rs.Empty() {
		noData(panel)
		return
	}

	switch plan.Layout {
	case insight.LayoutMessage:
		buildMessage(panel, plan, rs)
	case insight.LayoutTable:
		panel.Table = toTable(rs)
		panel.Status = StatusOK
	case insight.LayoutTableCount:
		panel.Table = toTable(rs)
		panel.Message = countMessage(plan, int64(rs.Len()))
		panel.Status = StatusOK
	case insight.LayoutMetrics:
		buildMetrics(panel, plan, rs)
	default:
		noData(panel)
	}
}

func noData(panel *Panel) {
	panel.Status = StatusNoData
	panel.Notice = NoticeNoData
}

// buildMessage reads the single value of a one-row result. A NULL or a zero
// count shows the no-data notice instead of a caption ending in 0, so an empty
// table and an unmatched filter look the same.
func buildMessage(panel *Panel, plan insight.Plan, rs repository.ResultSet) {
	if n, ok := rs.Int64(0, 0); ok {
		if n == 0 {
			noData(panel)
			return
		}
		panel.Message = countMessage(plan, n)
		panel.Status = StatusOK
		return
	}

	v, ok := rs.Value(0, 0)
	if !ok || v == nil {
		noData(panel)
		return
	}
	panel.Message = &Message{Tone: plan.Tone, Text: caption(plan, FormatValue(v)), Value: v}
	panel.Status = StatusOK
}

func buildMetrics(panel *Panel, plan insight.Plan, rs repository.ResultSet) {
	metrics := make([]Metric, 0, len(plan.Metrics))
	present := 0
	for _, ms := range plan.Metrics {
		m := Metric{Label: ms.Label, Display: "-"}
		if f, ok := rs.Float64(0, ms.Column); ok {
			d := decimal.NewFromFloat(f).Round(ms.Precision)
			v := d.InexactFloat64()
			m.Value = &v
			m.Display = d.StringFixed(ms.Precision)
			present++
		}
		metrics = append(metrics, m)
	}

	if present == 0 {
		noData(panel)
		return
	}
	panel.Metrics = metrics
	panel.Status = StatusOK
}

func countMessage(plan insight.Plan, n int64) *Message {
	return &Message{Tone: plan.Tone, Text: caption(plan, FormatValue(n)), Value: n}
}

func caption(plan insight.Plan, value string) string {
	if plan.Unit != "" {
		return fmt.Sprintf("%s: %s %s", plan.Caption, value, plan.Unit)
	}
	return fmt.Sprintf("%s: %s", plan.Caption, value)
}

func toTable(rs repository.ResultSet) *Table {
	rows := make([][]any, len(rs.Rows))
	copy(rows, rs.Rows)
	cols := make([]string, len(rs.Columns))
	copy(cols, rs.Columns)
	return &Table{Columns: cols, Rows: rows}
}
