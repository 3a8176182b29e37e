package models

import "database/sql"

// Table holds the trip records loaded from the Ola rides export.
const Table = "ola_data"

// Booking status values seen in the dataset.
const (
	StatusSuccess            = "Success"
	StatusCanceledByCustomer = "Canceled by Customer"
	StatusCanceledByDriver   = "Canceled by Driver"
	StatusDriverNotFound     = "Driver Not Found"
	StatusIncomplete         = "Incomplete"
)

// TripRecord is one row of the trips table.
type TripRecord struct {
	Date                  string
	Time                  string
	BookingID             string
	BookingStatus         string
	CustomerID            string
	VehicleType           string
	PickupLocation        string
	DropLocation          string
	VTAT                  sql.NullFloat64
	CTAT                  sql.NullFloat64
	CanceledByCustomer    sql.NullString
	CanceledByDriver      sql.NullString
	IncompleteRides       sql.NullString
	IncompleteRidesReason sql.NullString
	BookingValue          sql.NullFloat64
	PaymentMethod         sql.NullString
	RideDistance          sql.NullFloat64
	DriverRatings         sql.NullFloat64
	CustomerRating        sql.NullFloat64
}

// Column kinds used for DDL and CSV decoding.
const (
	KindText    = "text"
	KindNumeric = "numeric"
)

// Column describes a physical column of the trips table.
type Column struct {
	Name string
	Kind string
}

// Columns lists the table columns in storage order.
var Columns = []Column{
	{"Date", KindText},
	{"Time", KindText},
	{"Booking_ID", KindText},
	{"Booking_Status", KindText},
	{"Customer_ID", KindText},
	{"Vehicle_Type", KindText},
	{"Pickup_Location", KindText},
	{"Drop_Location", KindText},
	{"V_TAT", KindNumeric},
	{"C_TAT", KindNumeric},
	{"Canceled_Rides_by_Customer", KindText},
	{"Canceled_Rides_by_Driver", KindText},
	{"Incomplete_Rides", KindText},
	{"Incomplete_Rides_Reason", KindText},
	{"Booking_Value", KindNumeric},
	{"Payment_Method", KindText},
	{"Ride_Distance", KindNumeric},
	{"Driver_Ratings", KindNumeric},
	{"Customer_Rating", KindNumeric},
}

// Values returns the record's cells in Columns order.
func (t TripRecord) Values() []any {
	return []any{
		t.Date, t.Time, t.BookingID, t.BookingStatus, t.CustomerID, t.VehicleType,
		t.PickupLocation, t.DropLocation, t.VTAT, t.CTAT,
		t.CanceledByCustomer, t.CanceledByDriver, t.IncompleteRides, t.IncompleteRidesReason,
		t.BookingValue, t.PaymentMethod, t.RideDistance, t.DriverRatings, t.CustomerRating,
	}
}
