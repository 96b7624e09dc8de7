package user

import "context"

// User is a coach or staff member who can sign in.
type User struct {
	ID       int64
	Username string
	Name     string
	TeamID   *int64
}

// Repository describes user lookups needed for sign-in.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
}
