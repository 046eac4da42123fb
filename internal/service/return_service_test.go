package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zainxyz/thriller/internal/model"
	"github.com/zainxyz/thriller/internal/repository"
)

func openRental(dateOut time.Time) model.Rental {
	return model.Rental{
		ID:              11,
		CustomerID:      7,
		CustomerName:    "Ada",
		MovieID:         3,
		MovieTitle:      "Alien",
		DailyRentalRate: 2,
		DateOut:         dateOut,
	}
}

func TestReturnRentalHappyPath(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	customers := &fakeCustomerStore{}
	movies := &fakeMovieStore{movie: model.Movie{ID: 3, NumberInStock: 0}}
	rentals := &fakeRentalStore{latest: openRental(now.Add(-7 * 24 * time.Hour))}
	svc, tx := newTestService(customers, movies, rentals)

	rental, err := svc.ReturnRental(context.Background(), 7, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, rentals.closed)
	assert.Equal(t, 1, movies.increments)
	require.NotNil(t, rental.RentalFee)
	assert.Equal(t, 14.0, *rental.RentalFee)
	require.NotNil(t, rental.DateReturned)
	assert.Equal(t, now, *rental.DateReturned)
}

func TestReturnRentalSameDayIsFree(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	movies := &fakeMovieStore{movie: model.Movie{ID: 3}}
	rentals := &fakeRentalStore{latest: openRental(now.Add(-2 * time.Hour))}
	svc, _ := newTestService(&fakeCustomerStore{}, movies, rentals)

	rental, err := svc.ReturnRental(context.Background(), 7, 3)
	require.NoError(t, err)
	require.NotNil(t, rental.RentalFee)
	assert.Equal(t, 0.0, *rental.RentalFee)
}

func TestReturnRentalAlreadyProcessed(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	closed := openRental(now.Add(-48 * time.Hour))
	closed.Close(now.Add(-time.Hour))

	movies := &fakeMovieStore{movie: model.Movie{ID: 3, NumberInStock: 1}}
	rentals := &fakeRentalStore{latest: closed}
	svc, _ := newTestService(&fakeCustomerStore{}, movies, rentals)

	_, err := svc.ReturnRental(context.Background(), 7, 3)
	assert.ErrorIs(t, err, ErrAlreadyReturned)
	// stock is incremented exactly once per rental, never on the retry
	assert.Equal(t, 0, movies.increments)
	assert.Equal(t, 0, rentals.closed)
}

func TestReturnRentalUnknownPair(t *testing.T) {
	movies := &fakeMovieStore{}
	rentals := &fakeRentalStore{latestErr: repository.ErrRentalNotFound}
	svc, _ := newTestService(&fakeCustomerStore{}, movies, rentals)

	_, err := svc.ReturnRental(context.Background(), 7, 3)
	assert.ErrorIs(t, err, repository.ErrRentalNotFound)
	assert.Equal(t, 0, movies.increments)
}

func TestReturnRentalCloseFailureSkipsRestock(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	movies := &fakeMovieStore{movie: model.Movie{ID: 3}}
	rentals := &fakeRentalStore{
		latest:   openRental(now.Add(-24 * time.Hour)),
		closeErr: repository.ErrRentalNotFound,
	}
	svc, _ := newTestService(&fakeCustomerStore{}, movies, rentals)

	_, err := svc.ReturnRental(context.Background(), 7, 3)
	assert.ErrorIs(t, err, repository.ErrRentalNotFound)
	assert.Equal(t, 0, movies.increments)
}
