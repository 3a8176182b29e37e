package importer

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/godilite/ride-insights/internal/repository/models"
)

// ErrMissingColumns is returned when the CSV header lacks a required column.
var ErrMissingColumns = errors.New("csv header is missing required columns")

// requiredColumns are the fields the dashboard queries read.
var requiredColumns = []string{
	"Booking_Status", "Customer_ID", "Vehicle_Type", "Payment_Method",
	"Booking_Value", "Ride_Distance", "Driver_Ratings", "Customer_Rating",
	"Incomplete_Rides", "Incomplete_Rides_Reason", "Canceled_Rides_by_Driver",
}

// InsertTrips writes records in a single transaction and returns the count written.
func InsertTrips(ctx context.Context, db *sql.DB, d Dialect, trips []models.TripRecord) (int, error) {
	rows := make([][]any, len(trips))
	for i, t := range trips {
		rows[i] = t.Values()
	}
	return insertRows(ctx, db, d, rows)
}

// ImportCSV loads a rides export. Header names are matched case-insensitively;
// unknown columns are ignored and blank numeric cells become NULL.
func ImportCSV(ctx context.Context, db *sql.DB, d Dialect, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	index := mapHeader(header)
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var rows [][]any
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return 0, fmt.Errorf("read csv line %d: %w", line, err)
		}

		row, err := decodeRecord(record, index)
		if err != nil {
			return 0, fmt.Errorf("csv line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return insertRows(ctx, db, d, rows)
}

func mapHeader(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		index[strings.ReplaceAll(key, " ", "_")] = i
	}
	return index
}

func decodeRecord(record []string, index map[string]int) ([]any, error) {
	row := make([]any, len(models.Columns))
	for i, c := range models.Columns {
		pos, ok := index[strings.ToLower(c.Name)]
		if !ok || pos >= len(record) {
			row[i] = nil
			continue
		}

		raw := strings.TrimSpace(record[pos])
		if raw == "" || strings.EqualFold(raw, "null") || strings.EqualFold(raw, "nan") {
			row[i] = nil
			continue
		}

		if c.Kind == models.KindNumeric {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %q is not a number", c.Name, raw)
			}
			row[i] = f
			continue
		}
		row[i] = raw
	}
	return row, nil
}

func insertRows(ctx context.Context, db *sql.DB, d Dialect, rows [][]any) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, d.InsertSQL())
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return 0, fmt.Errorf("insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(rows), nil
}
