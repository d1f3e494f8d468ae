package repository

import (
	"context"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type AddressSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IAddressRepository = (*AddressSQLRepository)(nil)

func NewAddressSQLRepository(db *gorm.DB) *AddressSQLRepository {
	return &AddressSQLRepository{db: db}
}

func (r *AddressSQLRepository) GetDefault(ctx context.Context, userID string) (entities.Address, error) {
	var m addressModel
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		Order("created_at desc").
		Limit(1).
		Find(&m)
	if res.Error != nil {
		return entities.Address{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Address{}, nil
	}
	return m.toEntity(), nil
}

func (r *AddressSQLRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Address, error) {
	var rows []addressModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Address, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// ReplaceDefault unsets the previous default and inserts addr in one transaction.
func (r *AddressSQLRepository) ReplaceDefault(ctx context.Context, addr entities.Address) (entities.Address, error) {
	addr.IsDefault = true
	m := toAddressModel(addr)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&addressModel{}).
			Where("user_id = ? AND is_default = ?", addr.UserID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return entities.Address{}, interfaces.ErrAlreadyExists
		}
		return entities.Address{}, err
	}
	return m.toEntity(), nil
}
