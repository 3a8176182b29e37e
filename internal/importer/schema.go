package importer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/godilite/ride-insights/internal/repository/models"
	dbbuilder "github.com/godilite/ride-insights/pkg/database"
)

// Dialect captures the per-driver differences the loader cares about.
type Dialect struct {
	Driver string
}

// DialectFor returns the dialect for a registered driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case dbbuilder.DriverMySQL, dbbuilder.DriverPostgres, dbbuilder.DriverSQLite:
		return Dialect{Driver: driver}, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
}

// Placeholder returns the bind marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d.Driver == dbbuilder.DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (d Dialect) columnType(kind string) string {
	switch {
	case kind == models.KindNumeric && d.Driver == dbbuilder.DriverSQLite:
		return "REAL"
	case kind == models.KindNumeric:
		// NUMERIC keeps ROUND(AVG(x), 2) valid on PostgreSQL.
		return "NUMERIC(12,2)"
	case d.Driver == dbbuilder.DriverMySQL:
		return "VARCHAR(255)"
	default:
		return "TEXT"
	}
}

// CreateTableSQL renders the DDL of the trips table.
func (d Dialect) CreateTableSQL() string {
	defs := make([]string, len(models.Columns))
	for i, c := range models.Columns {
		defs[i] = fmt.Sprintf("%s %s", c.Name, d.columnType(c.Kind))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", models.Table, strings.Join(defs, ",\n\t"))
}

// InsertSQL renders a single-row insert over every column.
func (d Dialect) InsertSQL() string {
	names := make([]string, len(models.Columns))
	marks := make([]string, len(models.Columns))
	for i, c := range models.Columns {
		names[i] = c.Name
		marks[i] = d.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", models.Table, strings.Join(names, ", "), strings.Join(marks, ", "))
}

// CreateSchema creates the trips table. With replace, an existing table is dropped first.
func CreateSchema(ctx context.Context, db *sql.DB, d Dialect, replace bool) error {
	if replace {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+models.Table); err != nil {
			return fmt.Errorf("drop %s: %w", models.Table, err)
		}
	}
	if _, err := db.ExecContext(ctx, d.CreateTableSQL()); err != nil {
		return fmt.Errorf("create %s: %w", models.Table, err)
	}
	return nil
}
