package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/zainxyz/thriller/internal/model"
)

// ErrRentalNotFound is returned when no rental matches a lookup.
var ErrRentalNotFound = errors.New("rental not found")

// RentalRepo persists rentals with their customer and movie snapshots.  All
// writes are Tx-scoped because a rental never changes alone: creation pairs
// with a stock decrement and closing pairs with a stock increment.  The
// caller owns commit and rollback.
type RentalRepo struct{ DB *sql.DB }

// NewRentalRepo returns a new RentalRepo bound to the given database.
func NewRentalRepo(db *sql.DB) *RentalRepo { return &RentalRepo{DB: db} }

const rentalColumns = `id, customer_id, customer_name, customer_phone,
	movie_id, movie_title, daily_rental_rate, date_out, date_returned, rental_fee`

func scanRental(scan func(dest ...any) error) (model.Rental, error) {
	var (
		r        model.Rental
		returned sql.NullTime
		fee      sql.NullFloat64
	)
	err := scan(&r.ID, &r.CustomerID, &r.CustomerName, &r.CustomerPhone,
		&r.MovieID, &r.MovieTitle, &r.DailyRentalRate, &r.DateOut, &returned, &fee)
	if err != nil {
		return model.Rental{}, err
	}
	if returned.Valid {
		t := returned.Time
		r.DateReturned = &t
	}
	if fee.Valid {
		f := fee.Float64
		r.RentalFee = &f
	}
	return r, nil
}

// List returns all rentals, most recent checkout first.
func (r *RentalRepo) List(ctx context.Context) ([]model.Rental, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+rentalColumns+" FROM rentals ORDER BY date_out DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rentals := []model.Rental{}
	for rows.Next() {
		rec, err := scanRental(rows.Scan)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rec)
	}
	return rentals, rows.Err()
}

// CreateTx inserts a new open rental within an existing transaction and
// populates the generated id on the provided record.
func (r *RentalRepo) CreateTx(ctx context.Context, tx *sql.Tx, rec *model.Rental) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO rentals (customer_id, customer_name, customer_phone,
			movie_id, movie_title, daily_rental_rate, date_out)
		 VALUES (?,?,?,?,?,?,?)`,
		rec.CustomerID, rec.CustomerName, rec.CustomerPhone,
		rec.MovieID, rec.MovieTitle, rec.DailyRentalRate, rec.DateOut)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = uint64(id)
	return nil
}

// OpenExistsTx reports whether the customer already has an open rental for
// the movie.  Run inside the creation transaction it enforces the at most
// one open rental per (customer, movie) rule.
func (r *RentalRepo) OpenExistsTx(ctx context.Context, tx *sql.Tx, customerID, movieID uint64) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx,
		`SELECT 1 FROM rentals
		 WHERE customer_id=? AND movie_id=? AND date_returned IS NULL
		 LIMIT 1 FOR UPDATE`,
		customerID, movieID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// LatestByPairTx fetches the most recent rental for a (customer, movie) pair
// with a row lock, open or closed.  The return flow needs the closed case to
// reject a second return of the same rental rather than reporting not-found.
func (r *RentalRepo) LatestByPairTx(ctx context.Context, tx *sql.Tx, customerID, movieID uint64) (model.Rental, error) {
	rec, err := scanRental(tx.QueryRowContext(ctx,
		"SELECT "+rentalColumns+` FROM rentals
		 WHERE customer_id=? AND movie_id=?
		 ORDER BY date_out DESC, id DESC LIMIT 1 FOR UPDATE`,
		customerID, movieID).Scan)
	if err == sql.ErrNoRows {
		return model.Rental{}, ErrRentalNotFound
	}
	return rec, err
}

// CloseTx marks a rental returned within an existing transaction.  The WHERE
// clause re-checks that the rental is still open, so even a racing close that
// slipped past the row lock cannot process the same return twice.
func (r *RentalRepo) CloseTx(ctx context.Context, tx *sql.Tx, id uint64, returned time.Time, fee float64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE rentals SET date_returned=?, rental_fee=? WHERE id=? AND date_returned IS NULL",
		returned, fee, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRentalNotFound
	}
	return nil
}
