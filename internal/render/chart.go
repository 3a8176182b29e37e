package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/godilite/ride-insights/internal/service"
	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrNotChartable is returned for panels without a label/value table.
var ErrNotChartable = errors.New("insight cannot be charted")

// Chartable reports whether panel is a table whose last column is numeric.
func Chartable(panel service.Panel) bool {
	_, err := bars(panel)
	return err == nil
}

// BarChart writes panel as a PNG bar chart.
func BarChart(w io.Writer, panel service.Panel) error {
	values, err := bars(panel)
	if err != nil {
		return err
	}

	graph := chart.BarChart{
		Title: panel.Title,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Height:   480,
		Width:    800,
		BarWidth: 60,
		YAxis:    chart.YAxis{Range: valueRange(values)},
		Bars:     values,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// valueRange anchors the axis at zero so equal or single bars still span
// a non-empty range.
func valueRange(values []chart.Value) *chart.ContinuousRange {
	r := &chart.ContinuousRange{}
	for _, v := range values {
		r.Min = math.Min(r.Min, v.Value)
		r.Max = math.Max(r.Max, v.Value)
	}
	if r.Max == r.Min {
		r.Max = r.Min + 1
	}
	return r
}

func bars(panel service.Panel) ([]chart.Value, error) {
	if panel.Status != service.StatusOK || panel.Table == nil {
		return nil, ErrNotChartable
	}
	cols := len(panel.Table.Columns)
	if cols < 2 || len(panel.Table.Rows) == 0 {
		return nil, ErrNotChartable
	}

	values := make([]chart.Value, 0, len(panel.Table.Rows))
	for _, row := range panel.Table.Rows {
		if len(row) != cols {
			return nil, ErrNotChartable
		}
		var v float64
		switch n := row[cols-1].(type) {
		case float64:
			v = n
		case int64:
			v = float64(n)
		default:
			return nil, ErrNotChartable
		}
		values = append(values, chart.Value{Label: service.FormatValue(row[0]), Value: v})
	}
	return values, nil
}
