package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zainxyz/thriller/internal/model"
)

// ErrMovieNotFound is returned when a movie id does not match any row.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepo provides CRUD operations for the movie catalog plus the stock
// mutations used inside the rental and return transactions.  The stock
// counter must only ever change through DecrementStockTx / IncrementStockTx;
// there is deliberately no plain "set stock" statement outside of Update,
// which is a full catalog edit.
type MovieRepo struct{ DB *sql.DB }

// NewMovieRepo returns a new MovieRepo bound to the given database.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

const movieColumns = "id, title, genre_id, genre_name, number_in_stock, daily_rental_rate"

func scanMovie(row *sql.Row) (model.Movie, error) {
	var m model.Movie
	err := row.Scan(&m.ID, &m.Title, &m.GenreID, &m.GenreName, &m.NumberInStock, &m.DailyRentalRate)
	if err == sql.ErrNoRows {
		return model.Movie{}, ErrMovieNotFound
	}
	return m, err
}

// List returns all movies sorted by title.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	movies := []model.Movie{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.GenreID, &m.GenreName, &m.NumberInStock, &m.DailyRentalRate); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// GetByID fetches a single movie by id.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	return scanMovie(r.DB.QueryRowContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id=? LIMIT 1", id))
}

// GetForUpdateTx fetches a movie inside a transaction with a row lock so the
// rental flow can check stock and decrement it without racing a concurrent
// rental of the same title.
func (r *MovieRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Movie, error) {
	return scanMovie(tx.QueryRowContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id=? LIMIT 1 FOR UPDATE", id))
}

// Create inserts a movie (with its genre snapshot) and populates the
// generated id.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO movies (title, genre_id, genre_name, number_in_stock, daily_rental_rate) VALUES (?,?,?,?,?)",
		m.Title, m.GenreID, m.GenreName, m.NumberInStock, m.DailyRentalRate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// Update rewrites every catalog field of a movie, including a fresh genre
// snapshot resolved by the caller.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE movies SET title=?, genre_id=?, genre_name=?, number_in_stock=?, daily_rental_rate=? WHERE id=?",
		m.Title, m.GenreID, m.GenreName, m.NumberInStock, m.DailyRentalRate, m.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// zero rows can also mean an identical update; confirm existence
		if _, err := r.GetByID(ctx, m.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a movie by id.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM movies WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// DecrementStockTx takes one copy out of stock inside a transaction.  The
// guard lives in the statement itself: when no copies remain the UPDATE
// matches zero rows and ErrNoStock is returned, so the stock counter can
// never go negative regardless of interleaving.
func (r *MovieRepo) DecrementStockTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE movies SET number_in_stock = number_in_stock - 1 WHERE id=? AND number_in_stock > 0", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoStock
	}
	return nil
}

// IncrementStockTx puts one copy back in stock inside a transaction.
func (r *MovieRepo) IncrementStockTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE movies SET number_in_stock = number_in_stock + 1 WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
