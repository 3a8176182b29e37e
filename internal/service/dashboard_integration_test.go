package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/godilite/ride-insights/internal/importer"
	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/repository"
	"github.com/godilite/ride-insights/internal/repository/models"
	"github.com/godilite/ride-insights/internal/service"
	dbbuilder "github.com/godilite/ride-insights/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedInto(t *testing.T, db *sql.DB, trips []models.TripRecord) *service.DashboardService {
	t.Helper()
	ctx := context.Background()

	d, err := importer.DialectFor(dbbuilder.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, importer.CreateSchema(ctx, db, d, false))
	if len(trips) > 0 {
		_, err = importer.InsertTrips(ctx, db, d, trips)
		require.NoError(t, err)
	}

	return service.NewDashboardService(repository.NewHandle(db, zap.NewNop()), zap.NewNop())
}

func trip(id, status, customer, vehicle string, distance float64) models.TripRecord {
	return models.TripRecord{
		Date:          "2024-07-26",
		Time:          "14:00:00",
		BookingID:     id,
		BookingStatus: status,
		CustomerID:    customer,
		VehicleType:   vehicle,
		RideDistance:  sql.NullFloat64{Float64: distance, Valid: true},
		BookingValue:  sql.NullFloat64{Float64: 100.25, Valid: true},
	}
}

func newSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := dbbuilder.New(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDashboard_SeededStore(t *testing.T) {
	ctx := context.Background()
	svc := seedInto(t, newSQLite(t), []models.TripRecord{
		trip("B1", models.StatusSuccess, "C1", "A", 10),
		trip("B2", models.StatusSuccess, "C1", "A", 20),
		trip("B3", models.StatusSuccess, "C2", "B", 5),
		trip("B4", models.StatusCanceledByCustomer, "C3", "A", 0),
	})

	t.Run("successful bookings", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.TotalSuccessfulBookings)
		require.NoError(t, err)
		require.Equal(t, service.StatusOK, panel.Status)
		assert.Equal(t, int64(3), panel.Message.Value)
		assert.Equal(t, "Total Successful Rides: 3", panel.Message.Text)
	})

	t.Run("average distance per vehicle", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.AvgRideDistanceByVehicle)
		require.NoError(t, err)
		require.NotNil(t, panel.Table)
		assert.Equal(t, []string{"Vehicle_Type", "Average_Ride_Distance"}, panel.Table.Columns)

		assert.ElementsMatch(t, [][]any{{"A", 15.0}, {"B", 5.0}}, panel.Table.Rows)
	})

	t.Run("customer cancellations", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.CustomerCancellations)
		require.NoError(t, err)
		require.NotNil(t, panel.Message)
		assert.Equal(t, int64(1), panel.Message.Value)
	})

	t.Run("top customers", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.TopCustomersByRides)
		require.NoError(t, err)
		require.NotNil(t, panel.Table)
		require.Len(t, panel.Table.Rows, 3)
		assert.Equal(t, []any{"C1", int64(2)}, panel.Table.Rows[0])
		assert.Equal(t, []any{"C2", int64(1)}, panel.Table.Rows[1])
		assert.Equal(t, []any{"C3", int64(1)}, panel.Table.Rows[2])
	})

	t.Run("no matching driver cancellations", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.DriverCancellationsPersonalCar)
		require.NoError(t, err)
		assert.Equal(t, service.StatusNoData, panel.Status)
	})

	t.Run("total booking value", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.TotalBookingValue)
		require.NoError(t, err)
		require.Len(t, panel.Metrics, 1)
		assert.Equal(t, "300.75", panel.Metrics[0].Display)
	})
}

func rated(t models.TripRecord, driver, customer float64) models.TripRecord {
	t.DriverRatings = sql.NullFloat64{Float64: driver, Valid: true}
	t.CustomerRating = sql.NullFloat64{Float64: customer, Valid: true}
	return t
}

func paidBy(t models.TripRecord, method string) models.TripRecord {
	t.PaymentMethod = sql.NullString{String: method, Valid: true}
	return t
}

func incomplete(t models.TripRecord, flag, reason string) models.TripRecord {
	t.IncompleteRides = sql.NullString{String: flag, Valid: true}
	t.IncompleteRidesReason = sql.NullString{String: reason, Valid: true}
	return t
}

func TestDashboard_SeededFilters(t *testing.T) {
	ctx := context.Background()
	svc := seedInto(t, newSQLite(t), []models.TripRecord{
		paidBy(rated(trip("P1", models.StatusSuccess, "C1", "Prime Sedan", 12), 4.1, 4.0), "UPI"),
		paidBy(rated(trip("P2", models.StatusSuccess, "C2", "Prime Sedan", 8), 4.9, 5.0), "Cash"),
		rated(trip("P3", models.StatusCanceledByDriver, "C3", "Prime Sedan", 0), 1.0, 1.0),
		paidBy(rated(trip("A1", models.StatusSuccess, "C4", "Auto", 3), 5.0, 3.0), "UPI"),
		paidBy(rated(trip("A2", models.StatusSuccess, "C5", "Auto", 4), 3.5, 4.0), "UPI"),
		incomplete(trip("M1", models.StatusIncomplete, "C6", "Mini", 2), "Yes", "Vehicle Breakdown"),
		incomplete(trip("M2", models.StatusIncomplete, "C7", "Mini", 6), "Yes", "Customer Demand"),
		incomplete(trip("M3", models.StatusSuccess, "C8", "Mini", 9), "No", ""),
	})

	t.Run("prime sedan ratings only count successful prime sedan rides", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.PrimeSedanRatings)
		require.NoError(t, err)
		require.Equal(t, service.StatusOK, panel.Status)
		require.Len(t, panel.Metrics, 2)
		assert.Equal(t, "Max Rating", panel.Metrics[0].Label)
		assert.Equal(t, "4.90", panel.Metrics[0].Display)
		assert.Equal(t, "Min Rating", panel.Metrics[1].Label)
		assert.Equal(t, "4.10", panel.Metrics[1].Display)
	})

	t.Run("upi payments return every column", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.UPIPayments)
		require.NoError(t, err)
		require.Equal(t, service.StatusOK, panel.Status)
		require.NotNil(t, panel.Table)

		names := make([]string, len(models.Columns))
		for i, c := range models.Columns {
			names[i] = c.Name
		}
		assert.Equal(t, names, panel.Table.Columns)
		assert.Len(t, panel.Table.Rows, 3)
		require.NotNil(t, panel.Message)
		assert.Equal(t, int64(3), panel.Message.Value)
		assert.Equal(t, "Total UPI Payments: 3", panel.Message.Text)
	})

	t.Run("one customer rating row per vehicle type", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.AvgCustomerRatingByVehicle)
		require.NoError(t, err)
		require.NotNil(t, panel.Table)
		assert.Equal(t, []string{"Vehicle_Type", "Avg_Customer_Rating"}, panel.Table.Columns)
		// Mini has a successful ride without a rating, so its average is NULL.
		require.Len(t, panel.Table.Rows, 3)
		assert.ElementsMatch(t, [][]any{
			{"Prime Sedan", 4.5},
			{"Auto", 3.5},
			{"Mini", nil},
		}, panel.Table.Rows)
	})

	t.Run("one distance row per vehicle type", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.AvgRideDistanceByVehicle)
		require.NoError(t, err)
		require.NotNil(t, panel.Table)
		require.Len(t, panel.Table.Rows, 3)
		assert.ElementsMatch(t, [][]any{
			{"Prime Sedan", 10.0},
			{"Auto", 3.5},
			{"Mini", 9.0},
		}, panel.Table.Rows)
	})

	t.Run("incomplete rides only include flagged rows", func(t *testing.T) {
		panel, err := svc.Run(ctx, insight.IncompleteRides)
		require.NoError(t, err)
		require.NotNil(t, panel.Table)
		assert.Equal(t, []string{"Incomplete_Rides", "Incomplete_Rides_Reason"}, panel.Table.Columns)
		assert.ElementsMatch(t, [][]any{
			{"Yes", "Vehicle Breakdown"},
			{"Yes", "Customer Demand"},
		}, panel.Table.Rows)
		require.NotNil(t, panel.Message)
		assert.Equal(t, "Incomplete Rides: 2 records found", panel.Message.Text)
	})
}

func TestDashboard_EmptyTable(t *testing.T) {
	svc := seedInto(t, newSQLite(t), nil)

	for _, id := range insight.Insights() {
		panel, err := svc.Run(context.Background(), id)
		require.NoError(t, err, id.Slug())
		assert.Equal(t, service.StatusNoData, panel.Status, id.Slug())
		assert.Equal(t, service.NoticeNoData, panel.Notice, id.Slug())
	}
}

func TestDashboard_MissingTable(t *testing.T) {
	svc := service.NewDashboardService(repository.NewHandle(newSQLite(t), zap.NewNop()), zap.NewNop())

	panel, err := svc.Run(context.Background(), insight.UPIPayments)

	require.NoError(t, err)
	assert.Equal(t, service.StatusError, panel.Status)
	assert.Contains(t, panel.Notice, "no such table")
}

func TestDashboard_UnreachableStore(t *testing.T) {
	handle := repository.Open(context.Background(), zap.NewNop(),
		dbbuilder.WithDriver("postgres"),
		dbbuilder.WithDataSource("postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"))
	require.True(t, handle.Disabled())

	svc := service.NewDashboardService(handle, zap.NewNop())
	assert.False(t, svc.Connection().Connected)
	assert.Contains(t, svc.Connection().Warning, "Could not connect to the database")

	for _, id := range insight.Insights() {
		panel, err := svc.Run(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, service.StatusNoConnection, panel.Status, id.Slug())
	}

	home, err := svc.Run(context.Background(), insight.Home)
	require.NoError(t, err)
	assert.Equal(t, service.StatusOK, home.Status)
}
