package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/godilite/ride-insights/internal/importer"
	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/repository"
	"github.com/godilite/ride-insights/internal/repository/models"
	dbbuilder "github.com/godilite/ride-insights/pkg/database"
	"go.uber.org/zap"
)

func setupRealStore(tb testing.TB) *repository.Handle {
	tb.Helper()
	ctx := context.Background()

	db, err := dbbuilder.New(ctx,
		dbbuilder.WithDriver(dbbuilder.DriverSQLite),
		dbbuilder.WithDataSource(":memory:"),
		dbbuilder.WithMaxOpenConns(1),
	)
	if err != nil {
		tb.Fatalf("failed to create db pool via builder: %v", err)
	}
	tb.Cleanup(func() { db.Close() })

	d, _ := importer.DialectFor(dbbuilder.DriverSQLite)
	if err := importer.CreateSchema(ctx, db, d, false); err != nil {
		tb.Fatalf("failed to create schema: %v", err)
	}

	statuses := []string{models.StatusSuccess, models.StatusSuccess, models.StatusCanceledByCustomer, models.StatusCanceledByDriver}
	vehicles := []string{"Auto", "Prime Sedan", "Mini", "eBike"}
	trips := make([]models.TripRecord, 0, 500)
	for i := 0; i < 500; i++ {
		trips = append(trips, models.TripRecord{
			Date:          "2024-07-01",
			Time:          "09:30:00",
			BookingID:     fmt.Sprintf("CNR%07d", i),
			BookingStatus: statuses[i%len(statuses)],
			CustomerID:    fmt.Sprintf("CID%03d", i%37),
			VehicleType:   vehicles[i%len(vehicles)],
			PaymentMethod: sql.NullString{String: "UPI", Valid: true},
			RideDistance:  sql.NullFloat64{Float64: float64(i%40 + 1), Valid: true},
			BookingValue:  sql.NullFloat64{Float64: float64(i%900 + 50), Valid: true},
			DriverRatings: sql.NullFloat64{Float64: 3 + float64(i%3)*0.5, Valid: true},
		})
	}
	if _, err := importer.InsertTrips(ctx, db, d, trips); err != nil {
		tb.Fatalf("failed to seed db: %v", err)
	}

	return repository.NewHandle(db, zap.NewNop())
}

func BenchmarkRunAllInsights(b *testing.B) {
	svc := NewDashboardService(setupRealStore(b), zap.NewNop())
	ctx := context.Background()
	ids := insight.Insights()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.Run(ctx, ids[i%len(ids)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunTopCustomers(b *testing.B) {
	svc := NewDashboardService(setupRealStore(b), zap.NewNop())
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.Run(ctx, insight.TopCustomersByRides); err != nil {
			b.Fatal(err)
		}
	}
}
