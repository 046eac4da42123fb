package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zainxyz/thriller/internal/model"
	"github.com/zainxyz/thriller/internal/repository"
)

// fakeTxRunner runs the transactional closure directly with a nil *sql.Tx.
// The stores below ignore the tx handle, so the transaction logic is
// exercised without a database.
type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	f.calls++
	return fn(nil)
}

type fakeCustomerStore struct {
	customer model.Customer
	err      error
}

func (f *fakeCustomerStore) GetByID(ctx context.Context, id uint64) (model.Customer, error) {
	return f.customer, f.err
}

type fakeMovieStore struct {
	movie      model.Movie
	getErr     error
	decrements int
	decErr     error
	increments int
	incErr     error
}

func (f *fakeMovieStore) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Movie, error) {
	return f.movie, f.getErr
}

func (f *fakeMovieStore) DecrementStockTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	if f.decErr != nil {
		return f.decErr
	}
	f.decrements++
	f.movie.NumberInStock--
	return nil
}

func (f *fakeMovieStore) IncrementStockTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	if f.incErr != nil {
		return f.incErr
	}
	f.increments++
	f.movie.NumberInStock++
	return nil
}

type fakeRentalStore struct {
	open      bool
	latest    model.Rental
	latestErr error
	created   []model.Rental
	closed    int
	closeErr  error
}

func (f *fakeRentalStore) List(ctx context.Context) ([]model.Rental, error) {
	return f.created, nil
}

func (f *fakeRentalStore) CreateTx(ctx context.Context, tx *sql.Tx, rec *model.Rental) error {
	rec.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, *rec)
	return nil
}

func (f *fakeRentalStore) OpenExistsTx(ctx context.Context, tx *sql.Tx, customerID, movieID uint64) (bool, error) {
	return f.open, nil
}

func (f *fakeRentalStore) LatestByPairTx(ctx context.Context, tx *sql.Tx, customerID, movieID uint64) (model.Rental, error) {
	return f.latest, f.latestErr
}

func (f *fakeRentalStore) CloseTx(ctx context.Context, tx *sql.Tx, id uint64, returned time.Time, fee float64) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	f.closed++
	return nil
}

func newTestService(customers *fakeCustomerStore, movies *fakeMovieStore, rentals *fakeRentalStore) (*RentalService, *fakeTxRunner) {
	tx := &fakeTxRunner{}
	svc := NewRentalService(tx, customers, movies, rentals)
	svc.now = func() time.Time {
		return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, tx
}

func TestCreateRentalHappyPath(t *testing.T) {
	customers := &fakeCustomerStore{customer: model.Customer{ID: 7, Name: "Ada", Phone: "555-0101"}}
	movies := &fakeMovieStore{movie: model.Movie{ID: 3, Title: "Alien", NumberInStock: 2, DailyRentalRate: 2.5}}
	rentals := &fakeRentalStore{}
	svc, tx := newTestService(customers, movies, rentals)

	rental, err := svc.CreateRental(context.Background(), 7, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, movies.decrements)
	assert.Equal(t, uint64(7), rental.CustomerID)
	assert.Equal(t, "Ada", rental.CustomerName)
	assert.Equal(t, "Alien", rental.MovieTitle)
	assert.Equal(t, 2.5, rental.DailyRentalRate)
	assert.True(t, rental.Open())
	require.Len(t, rentals.created, 1)
	assert.Equal(t, rental.ID, rentals.created[0].ID)
}

func TestCreateRentalUnknownCustomer(t *testing.T) {
	customers := &fakeCustomerStore{err: repository.ErrCustomerNotFound}
	movies := &fakeMovieStore{movie: model.Movie{ID: 3, NumberInStock: 1}}
	rentals := &fakeRentalStore{}
	svc, tx := newTestService(customers, movies, rentals)

	_, err := svc.CreateRental(context.Background(), 99, 3)
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
	// the lookup fails before any transaction starts
	assert.Equal(t, 0, tx.calls)
}

func TestCreateRentalUnknownMovie(t *testing.T) {
	customers := &fakeCustomerStore{customer: model.Customer{ID: 7}}
	movies := &fakeMovieStore{getErr: repository.ErrMovieNotFound}
	rentals := &fakeRentalStore{}
	svc, _ := newTestService(customers, movies, rentals)

	_, err := svc.CreateRental(context.Background(), 7, 99)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
	assert.Equal(t, 0, movies.decrements)
}

func TestCreateRentalOutOfStock(t *testing.T) {
	customers := &fakeCustomerStore{customer: model.Customer{ID: 7}}
	movies := &fakeMovieStore{movie: model.Movie{ID: 3, NumberInStock: 0}}
	rentals := &fakeRentalStore{}
	svc, _ := newTestService(customers, movies, rentals)

	_, err := svc.CreateRental(context.Background(), 7, 3)
	assert.ErrorIs(t, err, repository.ErrNoStock)
	assert.Equal(t, 0, movies.decrements)
	assert.Empty(t, rentals.created)
}

func TestCreateRentalRejectsSecondOpenRental(t *testing.T) {
	customers := &fakeCustomerStore{customer: model.Customer{ID: 7}}
	movies := &fakeMovieStore{movie: model.Movie{ID: 3, NumberInStock: 5}}
	rentals := &fakeRentalStore{open: true}
	svc, _ := newTestService(customers, movies, rentals)

	_, err := svc.CreateRental(context.Background(), 7, 3)
	assert.ErrorIs(t, err, ErrAlreadyRented)
	assert.Equal(t, 0, movies.decrements)
}

func TestCreateRentalStockNeverOverdrawn(t *testing.T) {
	customers := &fakeCustomerStore{customer: model.Customer{ID: 7}}
	movies := &fakeMovieStore{movie: model.Movie{ID: 3, NumberInStock: 3}}
	svc, _ := newTestService(customers, movies, &fakeRentalStore{})

	granted := 0
	for i := 0; i < 10; i++ {
		if _, err := svc.CreateRental(context.Background(), 7, 3); err == nil {
			granted++
		} else {
			assert.ErrorIs(t, err, repository.ErrNoStock)
		}
	}
	assert.Equal(t, 3, granted)
	assert.Equal(t, 0, movies.movie.NumberInStock)
}
