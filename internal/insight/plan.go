package insight

import "fmt"

// Layout selects how a result is presented.
type Layout int

const (
	// LayoutStatic is descriptive content with no query.
	LayoutStatic Layout = iota
	// LayoutMessage shows the single value of a one-row result in a toned message.
	LayoutMessage
	// LayoutTable shows the result as a grid.
	LayoutTable
	// LayoutTableCount shows the grid plus a toned message with the row count.
	LayoutTableCount
	// LayoutMetrics shows one labeled number per MetricSpec from the first row.
	LayoutMetrics
)

func (l Layout) String() string {
	switch l {
	case LayoutStatic:
		return "static"
	case LayoutMessage:
		return "message"
	case LayoutTable:
		return "table"
	case LayoutTableCount:
		return "table_count"
	case LayoutMetrics:
		return "metrics"
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// Tone is the severity styling of a message.
type Tone string

const (
	ToneNone    Tone = ""
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
)

// MetricSpec labels one column of a metrics result.
type MetricSpec struct {
	Label     string
	Column    int
	Precision int32
}

// Plan is the fixed query and presentation of one menu selection.
type Plan struct {
	ID      ID
	Title   string
	Query   string
	Layout  Layout
	Tone    Tone
	Caption string
	Unit    string
	Metrics []MetricSpec
}

// HasQuery reports whether the plan runs against the store.
func (p Plan) HasQuery() bool { return p.Query != "" }

var plans = [idCount]Plan{
	Home: {
		Layout: LayoutStatic,
	},
	TotalSuccessfulBookings: {
		Query:   querySuccessfulBookings,
		Layout:  LayoutMessage,
		Tone:    ToneSuccess,
		Caption: "Total Successful Rides",
	},
	AvgRideDistanceByVehicle: {
		Query:  queryAvgDistanceByVehicle,
		Layout: LayoutTable,
	},
	CustomerCancellations: {
		Query:   queryCustomerCancellations,
		Layout:  LayoutMessage,
		Tone:    ToneError,
		Caption: "Rides Cancelled by Customers",
	},
	TopCustomersByRides: {
		Query:  queryTopCustomers,
		Layout: LayoutTable,
	},
	DriverCancellationsPersonalCar: {
		Query:   queryDriverCancellations,
		Layout:  LayoutMessage,
		Tone:    ToneWarning,
		Caption: "Driver-Cancelled Rides (Car/Personal)",
	},
	PrimeSedanRatings: {
		Query:  queryPrimeSedanRatings,
		Layout: LayoutMetrics,
		Metrics: []MetricSpec{
			{Label: "Max Rating", Column: 0, Precision: 2},
			{Label: "Min Rating", Column: 1, Precision: 2},
		},
	},
	UPIPayments: {
		Query:   queryUPIPayments,
		Layout:  LayoutTableCount,
		Tone:    ToneSuccess,
		Caption: "Total UPI Payments",
	},
	AvgCustomerRatingByVehicle: {
		Query:  queryAvgCustomerRatingByVehicle,
		Layout: LayoutTable,
	},
	TotalBookingValue: {
		Query:  queryTotalBookingValue,
		Layout: LayoutMetrics,
		Metrics: []MetricSpec{
			{Label: "Total Booking Value (₹)", Column: 0, Precision: 2},
		},
	},
	IncompleteRides: {
		Query:   queryIncompleteRides,
		Layout:  LayoutTableCount,
		Tone:    ToneInfo,
		Caption: "Incomplete Rides",
		Unit:    "records found",
	},
}

// Resolve returns the plan for id.
func Resolve(id ID) (Plan, error) {
	if !id.Valid() {
		return Plan{}, fmt.Errorf("%w: %d", ErrUnknownInsight, int(id))
	}
	p := plans[id]
	p.ID = id
	p.Title = labels[id]
	return p, nil
}
