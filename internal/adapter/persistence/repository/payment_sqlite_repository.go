package repository

import (
	"context"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PaymentSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentSQLRepository)(nil)

func NewPaymentSQLRepository(db *gorm.DB) *PaymentSQLRepository {
	return &PaymentSQLRepository{db: db}
}

func (r *PaymentSQLRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	m := toPaymentModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return entities.Payment{}, interfaces.ErrAlreadyExists
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentSQLRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var m paymentModel
	res := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&m)
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, nil
	}
	return m.toEntity(), nil
}

func (r *PaymentSQLRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	var rows []paymentModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
