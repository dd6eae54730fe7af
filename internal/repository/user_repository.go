package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/utils"
)

// UserRepo persists user accounts.  Passwords are hashed with bcrypt
// before they reach the database; the plain text is never stored.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// NewUser carries the registration form fields into Create.
type NewUser struct {
	FirstName     string
	Surname       string
	Email         string
	Password      string
	ContactNumber string
	StreetAddress string
}

// Create inserts a user and returns its ID.  The email is normalized to
// lower case; a duplicate email yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, nu NewUser, bcryptCost int) (uint64, error) {
	email := strings.ToLower(strings.TrimSpace(nu.Email))
	hash, err := utils.HashPassword(nu.Password, bcryptCost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (first_name, surname, email, password_hash, contact_number, street_address)
		 VALUES (?,?,?,?,?,?)`,
		nu.FirstName, nu.Surname, email, hash, nu.ContactNumber, nu.StreetAddress)
	if err != nil {
		// MySQL duplicate-key error code for the unique email index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, first_name, surname, email, password_hash, contact_number, street_address, created_at
		 FROM users WHERE email=? LIMIT 1`, email).
		Scan(&u.ID, &u.FirstName, &u.Surname, &u.Email, &u.PasswordHash,
			&u.ContactNumber, &u.StreetAddress, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, first_name, surname, email, password_hash, contact_number, street_address, created_at
		 FROM users WHERE id=? LIMIT 1`, id).
		Scan(&u.ID, &u.FirstName, &u.Surname, &u.Email, &u.PasswordHash,
			&u.ContactNumber, &u.StreetAddress, &u.CreatedAt)
	return u, err
}
