package interfaces

import (
	"context"
	"sacola_api/internal/domain/entities"
)

// ICartItemRepository abstracts persistence for bag line items.
//
// Every method is scoped by user id; an item id owned by another user behaves
// exactly like a missing one (zero value / false).
//
//go:generate mockgen -source=cart_item_repository_interface.go -destination=mocks/cart_item_repository_mock.go -package=mock_interfaces

type ICartItemRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]entities.CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID string, productID int64) (entities.CartItem, error)
	// Create returns ErrAlreadyExists when the item id is taken.
	Create(ctx context.Context, item entities.CartItem) (entities.CartItem, error)
	IncrementQuantity(ctx context.Context, userID, itemID string, delta int) (entities.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (entities.CartItem, error)
	Delete(ctx context.Context, userID, itemID string) (bool, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
