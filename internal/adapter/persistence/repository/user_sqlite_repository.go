package repository

import (
	"context"
	"time"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserSQLRepository)(nil)

func NewUserSQLRepository(db *gorm.DB) *UserSQLRepository {
	return &UserSQLRepository{db: db}
}

// EnsureByEmail inserts the user if missing and returns the stored row.
func (r *UserSQLRepository) EnsureByEmail(ctx context.Context, email string) (entities.User, error) {
	m := userModel{Email: email, CreatedAt: time.Now().UTC()}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error; err != nil {
		return entities.User{}, err
	}
	return r.GetByEmail(ctx, email)
}

func (r *UserSQLRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var m userModel
	res := r.db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&m)
	if res.Error != nil {
		return entities.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.User{}, nil
	}
	return entities.User{Email: m.Email, CreatedAt: m.CreatedAt.UTC()}, nil
}
