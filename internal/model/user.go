package model

import "time"

// User represents an application user record as stored in the
// `users` table.  Each field corresponds to a column.  Users are
// created at registration and are not editable afterwards; the
// password is never stored in plain text, only its bcrypt hash.
//
// Fields:
//  ID            – primary key identifier of the user.
//  FirstName     – given name used to build comment author names.
//  Surname       – family name.
//  Email         – unique, lower-cased email address.
//  PasswordHash  – bcrypt hashed password.
//  ContactNumber – phone number captured at registration.
//  StreetAddress – postal address captured at registration.
//  CreatedAt     – timestamp of registration.
type User struct {
	ID            uint64    // users.id
	FirstName     string    // users.first_name
	Surname       string    // users.surname
	Email         string    // users.email
	PasswordHash  string    // users.password_hash
	ContactNumber string    // users.contact_number
	StreetAddress string    // users.street_address
	CreatedAt     time.Time // users.created_at
}

// FullName returns the display name used when the user posts a comment.
func (u User) FullName() string {
	return u.FirstName + " " + u.Surname
}

// RefreshToken models an entry in the `refresh_tokens` table.  Only the
// SHA-256 hash of a token is persisted; the raw value is returned to the
// client once and never stored.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the raw token.
//  ExpiresAt – expiration timestamp.
//  RevokedAt – when the token was revoked (nil while active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
