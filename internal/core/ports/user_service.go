package ports

import (
	"context"
	"time"

	"github.com/accountly/accounts-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Username        string
	Name            string
	Email           string
	Phone           string
	DateOfBirth     time.Time
	Bio             string
	Password        string
	ConfirmPassword string
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
