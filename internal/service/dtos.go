package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/godilite/ride-insights/internal/insight"
)

// Status is the outcome of serving a panel.
type Status string

const (
	StatusOK           Status = "ok"
	StatusNoData       Status = "no_data"
	StatusNoConnection Status = "no_connection"
	StatusError        Status = "error"
)

// Notices shown in place of a result.
const (
	NoticeNoData       = "No data available for this insight."
	NoticeNoConnection = "No database connection. Insights are unavailable until the store is reachable."
)

type Message struct {
	Tone  insight.Tone `json:"tone"`
	Text  string       `json:"text"`
	Value any          `json:"value"`
}

type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type Metric struct {
	Label   string   `json:"label"`
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

// Panel is a render-ready view of one menu selection.
type Panel struct {
	Insight insight.ID           `json:"-"`
	Slug    string               `json:"insight"`
	Title   string               `json:"title"`
	Layout  string               `json:"layout"`
	Status  Status               `json:"status"`
	Notice  string               `json:"notice,omitempty"`
	Message *Message             `json:"message,omitempty"`
	Table   *Table               `json:"table,omitempty"`
	Metrics []Metric             `json:"metrics,omitempty"`
	Home    *insight.HomeContent `json:"home,omitempty"`
}

// HasResult reports whether the panel carries data to display.
func (p Panel) HasResult() bool {
	return p.Status == StatusOK
}

type CatalogEntry struct {
	Number int    `json:"number"`
	Slug   string `json:"slug"`
	Label  string `json:"label"`
}

type ConnectionInfo struct {
	Connected bool   `json:"connected"`
	Warning   string `json:"warning,omitempty"`
}

// FormatValue renders a result cell as text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(x)
	}
}
