package repository

import (
	"context"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type CouponSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.ICouponRepository = (*CouponSQLRepository)(nil)

func NewCouponSQLRepository(db *gorm.DB) *CouponSQLRepository {
	return &CouponSQLRepository{db: db}
}

func (r *CouponSQLRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	var m couponModel
	res := r.db.WithContext(ctx).Where("code = ?", code).Limit(1).Find(&m)
	if res.Error != nil {
		return entities.Coupon{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Coupon{}, nil
	}
	return m.toEntity(), nil
}

func (r *CouponSQLRepository) List(ctx context.Context) ([]entities.Coupon, error) {
	var rows []couponModel
	if err := r.db.WithContext(ctx).Order("code asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Coupon, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *CouponSQLRepository) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	m := toCouponModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return entities.Coupon{}, interfaces.ErrAlreadyExists
		}
		return entities.Coupon{}, err
	}
	return m.toEntity(), nil
}

func (r *CouponSQLRepository) GetApplied(ctx context.Context, userID string) (entities.AppliedCoupon, error) {
	var m appliedCouponModel
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&m)
	if res.Error != nil {
		return entities.AppliedCoupon{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.AppliedCoupon{}, nil
	}

	coupon, err := r.GetByCode(ctx, m.CouponCode)
	if err != nil {
		return entities.AppliedCoupon{}, err
	}
	return entities.AppliedCoupon{
		UserID:     m.UserID,
		CouponCode: m.CouponCode,
		AppliedAt:  m.AppliedAt.UTC(),
		Coupon:     coupon,
	}, nil
}

func (r *CouponSQLRepository) CreateApplied(ctx context.Context, a entities.AppliedCoupon) error {
	m := appliedCouponModel{UserID: a.UserID, CouponCode: a.CouponCode, AppliedAt: a.AppliedAt}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return interfaces.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CouponSQLRepository) UpdateApplied(ctx context.Context, a entities.AppliedCoupon) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&appliedCouponModel{}).
		Where("user_id = ?", a.UserID).
		Updates(map[string]any{
			"coupon_code": a.CouponCode,
			"applied_at":  a.AppliedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CouponSQLRepository) DeleteApplied(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&appliedCouponModel{}).Error
}
