// Package service implements the rental lifecycle: checking a movie out and
// processing its return.  These are the only two operations in the system
// that require true atomicity, so both run inside a single database
// transaction through repository.TxRunner and every store dependency is an
// interface to keep the transaction logic testable without a database.
package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/zainxyz/thriller/internal/model"
	"github.com/zainxyz/thriller/internal/repository"
)

// ErrAlreadyReturned is returned when the latest rental for a (customer,
// movie) pair has already been processed.  A second return is rejected, not
// silently accepted, so the stock counter is incremented exactly once.
var ErrAlreadyReturned = errors.New("return already processed")

// ErrAlreadyRented is returned when the customer already has an open rental
// for the movie.  Enforcing this at checkout keeps the return lookup
// unambiguous: there is never more than one open rental per pair.
var ErrAlreadyRented = errors.New("customer already has this movie checked out")

// CustomerStore is the slice of the customer repository the service needs.
type CustomerStore interface {
	GetByID(ctx context.Context, id uint64) (model.Customer, error)
}

// MovieStore covers the movie lookups and the transactional stock mutations.
type MovieStore interface {
	GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Movie, error)
	DecrementStockTx(ctx context.Context, tx *sql.Tx, id uint64) error
	IncrementStockTx(ctx context.Context, tx *sql.Tx, id uint64) error
}

// RentalStore covers rental persistence inside and outside transactions.
type RentalStore interface {
	List(ctx context.Context) ([]model.Rental, error)
	CreateTx(ctx context.Context, tx *sql.Tx, rec *model.Rental) error
	OpenExistsTx(ctx context.Context, tx *sql.Tx, customerID, movieID uint64) (bool, error)
	LatestByPairTx(ctx context.Context, tx *sql.Tx, customerID, movieID uint64) (model.Rental, error)
	CloseTx(ctx context.Context, tx *sql.Tx, id uint64, returned time.Time, fee float64) error
}

// RentalService is the transaction manager for rentals and returns.
type RentalService struct {
	tx        repository.TxRunner
	customers CustomerStore
	movies    MovieStore
	rentals   RentalStore
	now       func() time.Time
}

// NewRentalService wires the transaction managers to their stores.
func NewRentalService(tx repository.TxRunner, customers CustomerStore, movies MovieStore, rentals RentalStore) *RentalService {
	if tx == nil || customers == nil || movies == nil || rentals == nil {
		panic("nil store passed to NewRentalService")
	}
	return &RentalService{
		tx:        tx,
		customers: customers,
		movies:    movies,
		rentals:   rentals,
		now:       time.Now,
	}
}

// ListRentals returns all rentals, most recent checkout first.
func (s *RentalService) ListRentals(ctx context.Context) ([]model.Rental, error) {
	return s.rentals.List(ctx)
}

// CreateRental checks a movie out to a customer.  The rental insert and the
// stock decrement commit together or not at all; the decrement itself is
// conditional on remaining stock, so concurrent checkouts of the last copy
// cannot both succeed.  Possible failures: repository.ErrCustomerNotFound,
// repository.ErrMovieNotFound, repository.ErrNoStock, ErrAlreadyRented.
func (s *RentalService) CreateRental(ctx context.Context, customerID, movieID uint64) (model.Rental, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return model.Rental{}, err
	}

	var rental model.Rental
	err = s.tx.WithinTx(ctx, func(tx *sql.Tx) error {
		movie, err := s.movies.GetForUpdateTx(ctx, tx, movieID)
		if err != nil {
			return err
		}
		if movie.NumberInStock <= 0 {
			return repository.ErrNoStock
		}
		open, err := s.rentals.OpenExistsTx(ctx, tx, customerID, movieID)
		if err != nil {
			return err
		}
		if open {
			return ErrAlreadyRented
		}
		if err := s.movies.DecrementStockTx(ctx, tx, movieID); err != nil {
			return err
		}
		rental = model.Rental{
			CustomerID:      customer.ID,
			CustomerName:    customer.Name,
			CustomerPhone:   customer.Phone,
			MovieID:         movie.ID,
			MovieTitle:      movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
			DateOut:         s.now().UTC(),
		}
		return s.rentals.CreateTx(ctx, tx, &rental)
	})
	if err != nil {
		return model.Rental{}, err
	}
	return rental, nil
}

// ReturnRental processes the return of a movie.  It locates the latest
// rental for the pair, rejects a second processing, stamps the return time,
// computes the fee from the rate snapshot and restores stock.  The close and
// the increment share one transaction.  Possible failures:
// repository.ErrRentalNotFound, ErrAlreadyReturned.
func (s *RentalService) ReturnRental(ctx context.Context, customerID, movieID uint64) (model.Rental, error) {
	var rental model.Rental
	err := s.tx.WithinTx(ctx, func(tx *sql.Tx) error {
		rec, err := s.rentals.LatestByPairTx(ctx, tx, customerID, movieID)
		if err != nil {
			return err
		}
		if !rec.Open() {
			return ErrAlreadyReturned
		}
		rec.Close(s.now())
		if err := s.rentals.CloseTx(ctx, tx, rec.ID, *rec.DateReturned, *rec.RentalFee); err != nil {
			return err
		}
		if err := s.movies.IncrementStockTx(ctx, tx, rec.MovieID); err != nil {
			return err
		}
		rental = rec
		return nil
	})
	if err != nil {
		return model.Rental{}, err
	}
	return rental, nil
}
