package insight

// Every query is a constant; no user input reaches the SQL text.
const (
	querySuccessfulBookings = `SELECT COUNT(*) AS Successful_Rides
		FROM ola_data
		WHERE Booking_Status = 'Success'`

	queryAvgDistanceByVehicle = `SELECT Vehicle_Type, ROUND(AVG(Ride_Distance), 2) AS Average_Ride_Distance
		FROM ola_data
		WHERE Booking_Status = 'Success'
		GROUP BY Vehicle_Type`

	queryCustomerCancellations = `SELECT COUNT(*) AS Cancelled_By_Customers
		FROM ola_data
		WHERE Booking_Status = 'Canceled by Customer'`

	// Ties on the ride count are broken by Customer_ID so the top five are stable.
	queryTopCustomers = `SELECT Customer_ID, COUNT(*) AS Number_Of_Rides
		FROM ola_data
		GROUP BY Customer_ID
		ORDER BY Number_Of_Rides DESC, Customer_ID ASC
		LIMIT 5`

	queryDriverCancellations = `SELECT COUNT(*) AS Cancelled_By_Drivers
		FROM ola_data
		WHERE Booking_Status = 'Canceled by Driver'
		AND Canceled_Rides_by_Driver = 'Personal & Car related issue'`

	queryPrimeSedanRatings = `SELECT MAX(Driver_Ratings) AS Max_Rating, MIN(Driver_Ratings) AS Min_Rating
		FROM ola_data
		WHERE Vehicle_Type = 'Prime Sedan' AND Booking_Status = 'Success'`

	queryUPIPayments = `SELECT *
		FROM ola_data
		WHERE Payment_Method = 'UPI'`

	queryAvgCustomerRatingByVehicle = `SELECT Vehicle_Type, ROUND(AVG(Customer_Rating), 2) AS Avg_Customer_Rating
		FROM ola_data
		WHERE Booking_Status = 'Success'
		GROUP BY Vehicle_Type`

	queryTotalBookingValue = `SELECT ROUND(SUM(Booking_Value), 2) AS Total_Booking_Value
		FROM ola_data
		WHERE Booking_Status = 'Success'`

	queryIncompleteRides = `SELECT Incomplete_Rides, Incomplete_Rides_Reason
		FROM ola_data
		WHERE Incomplete_Rides = 'Yes'`
)
