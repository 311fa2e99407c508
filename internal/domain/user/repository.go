package user

import (
	"context"
	"errors"
)

// ErrEmailTaken is returned by Create when another account already holds the
// email address.
var ErrEmailTaken = errors.New("user email already taken")

// Repository describes user persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	List(ctx context.Context, f Filter) ([]User, error)
	Update(ctx context.Context, id string, p Patch) (User, bool, error)
	Delete(ctx context.Context, id string) error
}
