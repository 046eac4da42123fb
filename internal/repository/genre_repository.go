package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/zainxyz/thriller/internal/model"
)

// ErrGenreNotFound is returned when a genre id does not match any row.
var ErrGenreNotFound = errors.New("genre not found")

// ErrGenreExists is returned when creating or renaming a genre to a name
// that is already taken.
var ErrGenreExists = errors.New("genre name already exists")

// GenreRepo provides CRUD operations for genres.
type GenreRepo struct{ DB *sql.DB }

// NewGenreRepo returns a new GenreRepo bound to the given database.
func NewGenreRepo(db *sql.DB) *GenreRepo { return &GenreRepo{DB: db} }

// List returns all genres sorted by name.
func (r *GenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM genres ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	genres := []model.Genre{}
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// GetByID fetches a single genre by id.
func (r *GenreRepo) GetByID(ctx context.Context, id uint64) (model.Genre, error) {
	var g model.Genre
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name FROM genres WHERE id=? LIMIT 1", id).Scan(&g.ID, &g.Name)
	if err == sql.ErrNoRows {
		return model.Genre{}, ErrGenreNotFound
	}
	return g, err
}

// Create inserts a genre and populates its generated id.
func (r *GenreRepo) Create(ctx context.Context, g *model.Genre) error {
	res, err := r.DB.ExecContext(ctx, "INSERT INTO genres (name) VALUES (?)", g.Name)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrGenreExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}

// UpdateName renames a genre.  Movie snapshots embedding the old name are
// left untouched.
func (r *GenreRepo) UpdateName(ctx context.Context, id uint64, name string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE genres SET name=? WHERE id=?", name, id)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrGenreExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// either the id is unknown or the name is unchanged; distinguish
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a genre by id.
func (r *GenreRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM genres WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGenreNotFound
	}
	return nil
}
