package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

type UserRepo interface {
	Load(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, users []domain.User) error
}

// SessionRepo holds the current user. Get returns ok=false for anonymous.
type SessionRepo interface {
	Get(ctx context.Context) (domain.Session, bool, error)
	Put(ctx context.Context, sess domain.Session) error
	Clear(ctx context.Context) error
}
