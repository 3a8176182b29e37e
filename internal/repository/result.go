package repository

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ResultSet is a driver-independent copy of a query result. Cells hold
// nil, int64, float64, string, bool or time.Time.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// Len returns the row count.
func (r ResultSet) Len() int { return len(r.Rows) }

// Empty reports whether the result has no rows.
func (r ResultSet) Empty() bool { return len(r.Rows) == 0 }

// Value returns the cell at (row, col) if it exists.
func (r ResultSet) Value(row, col int) (any, bool) {
	if row < 0 || row >= len(r.Rows) {
		return nil, false
	}
	if col < 0 || col >= len(r.Rows[row]) {
		return nil, false
	}
	return r.Rows[row][col], true
}

// Int64 returns the cell as an integer. NULL and absent cells report false.
func (r ResultSet) Int64(row, col int) (int64, bool) {
	v, ok := r.Value(row, col)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

// Float64 returns the cell as a float. NULL and absent cells report false.
func (r ResultSet) Float64(row, col int) (float64, bool) {
	v, ok := r.Value(row, col)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func collect(rows *sql.Rows) (ResultSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return ResultSet{}, fmt.Errorf("read columns: %w", err)
	}

	dbTypes := make([]string, len(cols))
	if types, err := rows.ColumnTypes(); err == nil {
		for i, t := range types {
			dbTypes[i] = strings.ToUpper(t.DatabaseTypeName())
		}
	}

	rs := ResultSet{Columns: cols, Rows: make([][]any, 0)}
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return ResultSet{}, fmt.Errorf("scan row: %w", err)
		}
		for i, c := range cells {
			cells[i] = normalize(c, dbTypes[i])
		}
		rs.Rows = append(rs.Rows, cells)
	}

	if err := rows.Err(); err != nil {
		return ResultSet{}, fmt.Errorf("iterate rows: %w", err)
	}
	return rs, nil
}

func normalize(v any, dbType string) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return decodeText(string(x), dbType)
	case string:
		return decodeText(x, dbType)
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int16:
		return int64(x)
	case int8:
		return int64(x)
	case uint64:
		return int64(x)
	case uint32:
		return int64(x)
	case float32:
		return float64(x)
	case int64, float64, bool, time.Time:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// decodeText converts textual driver values using the column type name.
// Unknown types stay strings.
func decodeText(s, dbType string) any {
	switch {
	case isIntegerType(dbType):
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	case isDecimalType(dbType):
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

func isIntegerType(t string) bool {
	return strings.HasSuffix(t, "INT") || strings.Contains(t, "INTEGER") || t == "INT2" || t == "INT4" || t == "INT8"
}

func isDecimalType(t string) bool {
	for _, k := range []string{"DECIMAL", "NUMERIC", "FLOAT", "DOUBLE", "REAL"} {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
