package interfaces

import (
	"context"
	"sacola_api/internal/domain/entities"
)

// IAddressRepository abstracts persistence for delivery addresses.
//
//go:generate mockgen -source=address_repository_interface.go -destination=mocks/address_repository_mock.go -package=mock_interfaces

type IAddressRepository interface {
	GetDefault(ctx context.Context, userID string) (entities.Address, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Address, error)
	// ReplaceDefault clears the current default of addr.UserID and stores addr
	// as the new default in a single atomic unit.
	ReplaceDefault(ctx context.Context, addr entities.Address) (entities.Address, error)
}
