package interfaces

import (
	"context"
	"sacola_api/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/user_repository_mock.go -package=mock_interfaces

type IUserRepository interface {
	// EnsureByEmail creates the user when missing and returns the stored row.
	EnsureByEmail(ctx context.Context, email string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
