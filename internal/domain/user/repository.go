package user

import "context"

type Repository interface {
	Create(ctx context.Context, email, passwordHash, token string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByToken(ctx context.Context, token string) (User, error)
}
