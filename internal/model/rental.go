package model

import "time"

// Rental records a single checkout of a movie by a customer as stored in the
// `rentals` table.  The customer and movie fields are snapshots captured at
// checkout time: the fee owed at return is always computed from the rate that
// was in effect when the movie left the store, not from any later price
// change.  A rental is open while DateReturned is nil and is closed exactly
// once by the return transaction; rentals are never deleted by normal flow.
//
// Fields:
//
//	ID              – primary key identifier.
//	CustomerID      – id of the customer snapshot.
//	CustomerName    – name of the customer snapshot.
//	CustomerPhone   – phone of the customer snapshot.
//	MovieID         – id of the movie snapshot.
//	MovieTitle      – title of the movie snapshot.
//	DailyRentalRate – rate of the movie snapshot, used for the fee.
//	DateOut         – set when the rental is created (UTC).
//	DateReturned    – nil while open, set by the return transaction.
//	RentalFee       – nil while open, computed at return, never negative.
type Rental struct {
	ID              uint64     // rentals.id
	CustomerID      uint64     // rentals.customer_id
	CustomerName    string     // rentals.customer_name
	CustomerPhone   string     // rentals.customer_phone
	MovieID         uint64     // rentals.movie_id
	MovieTitle      string     // rentals.movie_title
	DailyRentalRate float64    // rentals.daily_rental_rate
	DateOut         time.Time  // rentals.date_out
	DateReturned    *time.Time // rentals.date_returned (nullable)
	RentalFee       *float64   // rentals.rental_fee (nullable)
}

// Open reports whether the rental has not been returned yet.
func (r *Rental) Open() bool { return r.DateReturned == nil }

// Close stamps the return time and computes the rental fee from the rate
// snapshot.  The fee is the number of whole days elapsed between DateOut and
// the return time multiplied by the daily rate; a partial day in progress is
// not billed, so a same-day return costs nothing.
func (r *Rental) Close(returned time.Time) {
	returned = returned.UTC()
	days := int(returned.Sub(r.DateOut).Hours() / 24)
	if days < 0 {
		days = 0
	}
	fee := float64(days) * r.DailyRentalRate
	r.DateReturned = &returned
	r.RentalFee = &fee
}
