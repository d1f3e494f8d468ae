package interfaces

import (
	"context"
	"sacola_api/internal/domain/entities"
)

// ICouponRepository abstracts the coupon catalogue and the per-user applied coupon.
//
// The applied coupon is keyed by user id: CreateApplied returns ErrAlreadyExists
// when the user already has one, UpdateApplied returns false when it has none.
//
//go:generate mockgen -source=coupon_repository_interface.go -destination=mocks/coupon_repository_mock.go -package=mock_interfaces

type ICouponRepository interface {
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	List(ctx context.Context) ([]entities.Coupon, error)
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)

	GetApplied(ctx context.Context, userID string) (entities.AppliedCoupon, error)
	CreateApplied(ctx context.Context, a entities.AppliedCoupon) error
	UpdateApplied(ctx context.Context, a entities.AppliedCoupon) (bool, error)
	DeleteApplied(ctx context.Context, userID string) error
}
