package model

// Movie represents a title in the rental catalog as stored in the `movies`
// table.  The genre is embedded as an {id, name} snapshot taken when the
// movie was created or last updated; deleting or renaming the genre later
// does not touch the movie row.
//
// NumberInStock is the only hot, contended field in the system.  It is
// mutated exclusively by the rental and return transactions through
// conditional UPDATEs, never through application-level read-modify-write.
//
// Fields:
//
//	ID              – primary key identifier.
//	Title           – movie title, 5 to 255 characters.
//	GenreID         – id of the embedded genre snapshot.
//	GenreName       – name of the embedded genre snapshot.
//	NumberInStock   – copies available for rent, 0 to 100, never negative.
//	DailyRentalRate – price per rental day, 0 to 25.
type Movie struct {
	ID              uint64  // movies.id
	Title           string  // movies.title
	GenreID         uint64  // movies.genre_id
	GenreName       string  // movies.genre_name
	NumberInStock   int     // movies.number_in_stock
	DailyRentalRate float64 // movies.daily_rental_rate
}
