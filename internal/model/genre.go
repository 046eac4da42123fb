package model

// Genre represents a movie genre as stored in the `genres` table.  A genre
// that has been embedded in a movie snapshot is treated as immutable from the
// movie's point of view: later renames do not rewrite existing snapshots.
// The json tags are omitted because these structs are used internally by the
// repository layer; handlers define separate response types.
//
// Fields:
//
//	ID   – primary key identifier.
//	Name – genre name, 5 to 50 characters, unique.
type Genre struct {
	ID   uint64 // genres.id
	Name string // genres.name
}
