package database

import (
	"context"
	"database/sql"
)

// schema holds the DDL for every table the application owns.  Statements use
// IF NOT EXISTS so EnsureSchema can run on every startup.  Snapshot columns
// on rentals are deliberately denormalized: a rental keeps the customer and
// movie data that were current at checkout, independent of later catalog
// edits.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS genres (
		id   BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		UNIQUE KEY uq_genres_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS movies (
		id                BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title             VARCHAR(255) NOT NULL,
		genre_id          BIGINT UNSIGNED NOT NULL,
		genre_name        VARCHAR(50) NOT NULL,
		number_in_stock   INT UNSIGNED NOT NULL DEFAULT 0,
		daily_rental_rate DECIMAL(5,2) NOT NULL DEFAULT 0,
		KEY idx_movies_title (title)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS customers (
		id      BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name    VARCHAR(50) NOT NULL,
		phone   VARCHAR(50) NOT NULL,
		is_gold TINYINT(1) NOT NULL DEFAULT 0
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(50) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_admin      TINYINT(1) NOT NULL DEFAULT 0,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS rentals (
		id                BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		customer_id       BIGINT UNSIGNED NOT NULL,
		customer_name     VARCHAR(50) NOT NULL,
		customer_phone    VARCHAR(50) NOT NULL,
		movie_id          BIGINT UNSIGNED NOT NULL,
		movie_title       VARCHAR(255) NOT NULL,
		daily_rental_rate DECIMAL(5,2) NOT NULL,
		date_out          DATETIME NOT NULL,
		date_returned     DATETIME NULL,
		rental_fee        DECIMAL(10,2) NULL,
		KEY idx_rentals_pair (customer_id, movie_id, date_out)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables.  It is safe to call on every
// startup and does not migrate existing columns.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
