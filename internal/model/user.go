package model

// User represents an application account as stored in the `users` table.
// Only the bcrypt hash of the password is persisted.  IsAdmin gates the
// admin-only operations (catalog deletes).
//
// Fields:
//
//	ID           – primary key identifier.
//	Name         – display name, 5 to 50 characters.
//	Email        – unique email address, 5 to 255 characters.
//	PasswordHash – bcrypt hashed password.
//	IsAdmin      – whether the account may perform admin operations.
type User struct {
	ID           uint64 // users.id
	Name         string // users.name
	Email        string // users.email
	PasswordHash string // users.password_hash
	IsAdmin      bool   // users.is_admin
}
