package repository

import (
	"context"
	"time"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CartItemSQLRepository persists bag items through gorm.
//
// The (user_id, product_id) unique index backs the one-line-per-product rule;
// quantity increments are single UPDATE statements.
type CartItemSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.ICartItemRepository = (*CartItemSQLRepository)(nil)

func NewCartItemSQLRepository(db *gorm.DB) *CartItemSQLRepository {
	return &CartItemSQLRepository{db: db}
}

func (r *CartItemSQLRepository) ListByUserID(ctx context.Context, userID string) ([]entities.CartItem, error) {
	var rows []cartItemModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.CartItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, m.toEntity())
	}
	return items, nil
}

func (r *CartItemSQLRepository) GetByUserAndProduct(ctx context.Context, userID string, productID int64) (entities.CartItem, error) {
	var m cartItemModel
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Limit(1).
		Find(&m)
	if res.Error != nil {
		return entities.CartItem{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.CartItem{}, nil
	}
	return m.toEntity(), nil
}

func (r *CartItemSQLRepository) Create(ctx context.Context, item entities.CartItem) (entities.CartItem, error) {
	m := toCartItemModel(item)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return entities.CartItem{}, interfaces.ErrAlreadyExists
		}
		return entities.CartItem{}, err
	}
	return m.toEntity(), nil
}

func (r *CartItemSQLRepository) IncrementQuantity(ctx context.Context, userID, itemID string, delta int) (entities.CartItem, error) {
	return r.update(ctx, userID, itemID, map[string]any{
		"quantity": gorm.Expr("quantity + ?", delta),
	})
}

func (r *CartItemSQLRepository) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (entities.CartItem, error) {
	return r.update(ctx, userID, itemID, map[string]any{
		"quantity": quantity,
	})
}

func (r *CartItemSQLRepository) update(ctx context.Context, userID, itemID string, values map[string]any) (entities.CartItem, error) {
	var out entities.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values["updated_at"] = time.Now().UTC()
		res := tx.Model(&cartItemModel{}).
			Where("id = ? AND user_id = ?", itemID, userID).
			Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		var m cartItemModel
		if err := tx.Where("id = ?", itemID).Take(&m).Error; err != nil {
			return err
		}
		out = m.toEntity()
		return nil
	})
	if err != nil {
		return entities.CartItem{}, err
	}
	return out, nil
}

func (r *CartItemSQLRepository) Delete(ctx context.Context, userID, itemID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&cartItemModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CartItemSQLRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&cartItemModel{}).Error
}
