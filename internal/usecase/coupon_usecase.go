package usecase

import (
	"context"
	"errors"
	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidCouponCode = errors.New("coupon code is required")
	ErrCouponNotFound    = errors.New("coupon not found")
)

// ICouponUseCase applies and removes the single active coupon of a user.
//
//go:generate mockgen -source=coupon_usecase.go -destination=../adapter/http/handlers/mocks/coupon_usecase_mock.go -package=mocks

type ICouponUseCase interface {
	Apply(ctx context.Context, userID, code string) (entities.AppliedCoupon, error)
	Remove(ctx context.Context, userID string) error
	List(ctx context.Context) ([]entities.Coupon, error)
	SeedDefaults(ctx context.Context) error
}

type CouponUseCase struct {
	repo interfaces.ICouponRepository
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository) *CouponUseCase {
	return &CouponUseCase{repo: repo}
}

// NormalizeCouponCode trims and upper-cases a coupon code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Apply replaces whatever coupon the user had; coupons never stack.
func (u *CouponUseCase) Apply(ctx context.Context, userID, code string) (entities.AppliedCoupon, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return entities.AppliedCoupon{}, err
	}
	code = NormalizeCouponCode(code)
	if code == "" {
		return entities.AppliedCoupon{}, ErrInvalidCouponCode
	}

	coupon, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.AppliedCoupon{}, err
	}
	if coupon.Code == "" {
		return entities.AppliedCoupon{}, ErrCouponNotFound
	}

	applied := entities.AppliedCoupon{
		UserID:     userID,
		CouponCode: coupon.Code,
		AppliedAt:  time.Now().UTC(),
		Coupon:     coupon,
	}

	current, err := u.repo.GetApplied(ctx, userID)
	if err != nil {
		return entities.AppliedCoupon{}, err
	}
	if current.UserID != "" {
		err = u.replace(ctx, applied)
	} else {
		err = u.create(ctx, applied)
	}
	if err != nil {
		return entities.AppliedCoupon{}, err
	}

	zap.L().Info("[coupon][usecase] coupon applied",
		zap.String("user_id", userID),
		zap.String("code", coupon.Code),
		zap.String("previous", current.CouponCode))
	return applied, nil
}

func (u *CouponUseCase) create(ctx context.Context, a entities.AppliedCoupon) error {
	err := u.repo.CreateApplied(ctx, a)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		_, err = u.repo.UpdateApplied(ctx, a)
	}
	return err
}

func (u *CouponUseCase) replace(ctx context.Context, a entities.AppliedCoupon) error {
	ok, err := u.repo.UpdateApplied(ctx, a)
	if err != nil {
		return err
	}
	if !ok {
		return u.create(ctx, a)
	}
	return nil
}

func (u *CouponUseCase) Remove(ctx context.Context, userID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}
	return u.repo.DeleteApplied(ctx, userID)
}

func (u *CouponUseCase) List(ctx context.Context) ([]entities.Coupon, error) {
	return u.repo.List(ctx)
}

// SeedDefaults inserts the default catalogue entries that are missing.
func (u *CouponUseCase) SeedDefaults(ctx context.Context) error {
	seeded := 0
	for _, c := range entities.DefaultCoupons() {
		existing, err := u.repo.GetByCode(ctx, c.Code)
		if err != nil {
			return err
		}
		if existing.Code != "" {
			continue
		}
		if _, err := u.repo.Create(ctx, c); err != nil && !errors.Is(err, interfaces.ErrAlreadyExists) {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		zap.L().Info("[coupon][usecase] coupons seeded", zap.Int("count", seeded))
	}
	return nil
}
