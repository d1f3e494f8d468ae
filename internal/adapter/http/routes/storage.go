package routes

import (
	"context"
	"fmt"
	"sacola_api/internal/adapter/persistence/repository"
	"sacola_api/internal/infrastructure/config"
	"sacola_api/internal/infrastructure/database"
	"sacola_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type repositories struct {
	items     interfaces.ICartItemRepository
	addresses interfaces.IAddressRepository
	coupons   interfaces.ICouponRepository
	users     interfaces.IUserRepository
	payments  interfaces.IPaymentRepository
	close     func()
}

// newRepositories opens the configured store. SQLite is migrated on open;
// DynamoDB tables are expected to exist.
func newRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		t := cfg.DynamoDB.Tables
		return repositories{
			items:     repository.NewCartItemDynamoRepository(ddb, t.CartItems),
			addresses: repository.NewAddressDynamoRepository(ddb, t.Addresses),
			coupons:   repository.NewCouponDynamoRepository(ddb, t.Coupons, t.AppliedCoupons),
			users:     repository.NewUserDynamoRepository(ddb, t.Users),
			payments:  repository.NewPaymentDynamoRepository(ddb, t.Payments),
			close:     func() {},
		}, nil

	case config.StorageSQLite:
		db, err := database.ConnectSQLite(cfg.SQLitePath, cfg.IsDevelopment())
		if err != nil {
			return repositories{}, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return repositories{}, err
		}
		closeFn := func() {
			if err := sqlDB.Close(); err != nil {
				zap.L().Warn("[database] sqlite close failed", zap.Error(err))
			}
		}
		if err := repository.AutoMigrate(db); err != nil {
			closeFn()
			return repositories{}, fmt.Errorf("migrate sqlite: %w", err)
		}
		return repositories{
			items:     repository.NewCartItemSQLRepository(db),
			addresses: repository.NewAddressSQLRepository(db),
			coupons:   repository.NewCouponSQLRepository(db),
			users:     repository.NewUserSQLRepository(db),
			payments:  repository.NewPaymentSQLRepository(db),
			close:     closeFn,
		}, nil

	default:
		return repositories{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
