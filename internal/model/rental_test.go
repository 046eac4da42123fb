package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalCloseWholeWeek(t *testing.T) {
	out := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r := Rental{DailyRentalRate: 2, DateOut: out}

	r.Close(out.Add(7 * 24 * time.Hour))

	require.NotNil(t, r.RentalFee)
	require.NotNil(t, r.DateReturned)
	assert.Equal(t, 14.0, *r.RentalFee)
	assert.False(t, r.Open())
}

func TestRentalCloseSameDayIsFree(t *testing.T) {
	out := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r := Rental{DailyRentalRate: 3.5, DateOut: out}

	r.Close(out.Add(6 * time.Hour))

	require.NotNil(t, r.RentalFee)
	assert.Equal(t, 0.0, *r.RentalFee)
}

func TestRentalClosePartialDayNotBilled(t *testing.T) {
	out := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r := Rental{DailyRentalRate: 2, DateOut: out}

	// 2 days and 23 hours out: only the 2 whole days are billed.
	r.Close(out.Add(2*24*time.Hour + 23*time.Hour))

	require.NotNil(t, r.RentalFee)
	assert.Equal(t, 4.0, *r.RentalFee)
}

func TestRentalCloseClockSkewNeverNegative(t *testing.T) {
	out := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r := Rental{DailyRentalRate: 2, DateOut: out}

	r.Close(out.Add(-time.Hour))

	require.NotNil(t, r.RentalFee)
	assert.Equal(t, 0.0, *r.RentalFee)
}

func TestRentalOpen(t *testing.T) {
	r := Rental{DateOut: time.Now().UTC()}
	assert.True(t, r.Open())

	r.Close(time.Now())
	assert.False(t, r.Open())
}
