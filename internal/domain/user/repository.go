package user

import (
	"context"
)

type UserRepository interface {
	// GetByID returns ErrUserNotFound when no row matches.
	GetByID(ctx context.Context, id string) (User, error)
}
