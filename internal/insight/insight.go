// Package insight maps menu selections to fixed queries and render plans.
package insight

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownInsight is returned for selections outside the menu.
var ErrUnknownInsight = errors.New("unknown insight")

// ID identifies a menu selection.
type ID int

const (
	Home ID = iota
	TotalSuccessfulBookings
	AvgRideDistanceByVehicle
	CustomerCancellations
	TopCustomersByRides
	DriverCancellationsPersonalCar
	PrimeSedanRatings
	UPIPayments
	AvgCustomerRatingByVehicle
	TotalBookingValue
	IncompleteRides

	idCount
)

// Menu section names.
const (
	SectionHome     = "HOME"
	SectionInsights = "Business Insights"
)

var labels = [idCount]string{
	Home:                           SectionHome,
	TotalSuccessfulBookings:        "1. Total Successful Bookings",
	AvgRideDistanceByVehicle:       "2. Avg Ride Distance per Vehicle Type",
	CustomerCancellations:          "3. Total Rides Cancelled by Customers",
	TopCustomersByRides:            "4. Top 5 Customers by Ride Count",
	DriverCancellationsPersonalCar: "5. Number of Rides Cancelled by Drivers (Car/Personal Issues)",
	PrimeSedanRatings:              "6. Prime Sedan Ratings (Max/Min)",
	UPIPayments:                    "7. Rides Paid via UPI",
	AvgCustomerRatingByVehicle:     "8. Avg Customer Rating by Vehicle Type",
	TotalBookingValue:              "9. Total Booking Value (Success Only)",
	IncompleteRides:                "10. Incomplete Rides & Reasons",
}

var slugs = [idCount]string{
	Home:                           "home",
	TotalSuccessfulBookings:        "successful-bookings",
	AvgRideDistanceByVehicle:       "avg-distance-by-vehicle",
	CustomerCancellations:          "customer-cancellations",
	TopCustomersByRides:            "top-customers",
	DriverCancellationsPersonalCar: "driver-cancellations",
	PrimeSedanRatings:              "prime-sedan-ratings",
	UPIPayments:                    "upi-payments",
	AvgCustomerRatingByVehicle:     "avg-customer-rating-by-vehicle",
	TotalBookingValue:              "total-booking-value",
	IncompleteRides:                "incomplete-rides",
}

// Valid reports whether id is part of the menu.
func (id ID) Valid() bool {
	return id >= Home && id < idCount
}

// Label is the menu text shown to users.
func (id ID) Label() string {
	if !id.Valid() {
		return fmt.Sprintf("insight(%d)", int(id))
	}
	return labels[id]
}

// Slug is the URL-safe identifier.
func (id ID) Slug() string {
	if !id.Valid() {
		return ""
	}
	return slugs[id]
}

func (id ID) String() string { return id.Slug() }

// Insights lists the ten Business Insights entries in menu order.
func Insights() []ID {
	out := make([]ID, 0, idCount-1)
	for id := TotalSuccessfulBookings; id < idCount; id++ {
		out = append(out, id)
	}
	return out
}

// Parse accepts a slug, a menu label, a menu number ("1".."10") or "home".
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Home, fmt.Errorf("%w: empty selection", ErrUnknownInsight)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n >= int(TotalSuccessfulBookings) && n < int(idCount) {
			return ID(n), nil
		}
		return Home, fmt.Errorf("%w: %q", ErrUnknownInsight, s)
	}

	for id := Home; id < idCount; id++ {
		if strings.EqualFold(s, slugs[id]) || strings.EqualFold(s, labels[id]) {
			return id, nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownInsight, s)
}
