package ports

import (
	"context"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login returns a signed token and the matched user. The password is
	// accepted without verification; see service.AuthService.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
