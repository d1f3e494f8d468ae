package routes

import (
	"context"
	_ "sacola_api/docs" // This will be auto-generated
	"sacola_api/internal/adapter/http/handlers"
	"sacola_api/internal/domain/pricing"
	"sacola_api/internal/infrastructure/auth"
	"sacola_api/internal/infrastructure/config"
	"sacola_api/internal/infrastructure/payments"
	"sacola_api/internal/usecase"
	"sacola_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Bag      *handlers.BagHandler
	Coupon   *handlers.CouponHandler
	Address  *handlers.AddressHandler
	Checkout *handlers.CheckoutHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("invalid configuration", zap.Error(err))
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	h, closeFn, err := NewHandlers(context.Background(), cfg)
	if err != nil {
		zap.L().Fatal("failed to build application", zap.Error(err))
	}
	defer closeFn()

	router := NewRouter(cfg, h)
	zap.L().Info("bag api listening",
		zap.String("port", cfg.Port),
		zap.String("storage", cfg.StorageDriver),
		zap.String("env", cfg.AppEnv))

	if err := router.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewHandlers wires storage, pricing, use cases and handlers from cfg and
// seeds the coupon catalogue. The returned func releases the storage.
func NewHandlers(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, err
	}

	tokens, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		repos.close()
		return Handlers{}, nil, err
	}

	engine := pricing.NewEngine(cfg.Pricing())

	var gateway interfaces.IPaymentGateway
	mockMode := false
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		zap.L().Warn("Mercado Pago gateway not configured; checkout disabled", zap.Error(err))
	} else {
		gateway = mpGateway
		mockMode = mpGateway.MockMode()
	}

	bagUseCase := usecase.NewBagUseCase(repos.items, repos.addresses, repos.coupons, engine)
	addressUseCase := usecase.NewAddressUseCase(repos.addresses, repos.items, engine)
	couponUseCase := usecase.NewCouponUseCase(repos.coupons)
	authUseCase := usecase.NewAuthUseCase(repos.users, tokens)
	checkoutUseCase := usecase.NewCheckoutUseCase(bagUseCase, repos.coupons, repos.payments, gateway, usecase.CheckoutOptions{
		RequirePaymentMethod: !mockMode,
		TestPayerEmail:       cfg.Payments.TestPayerEmail,
	})

	if err := couponUseCase.SeedDefaults(ctx); err != nil {
		repos.close()
		return Handlers{}, nil, err
	}

	return Handlers{
		Auth:     handlers.NewAuthHandler(authUseCase),
		Bag:      handlers.NewBagHandler(bagUseCase),
		Coupon:   handlers.NewCouponHandler(couponUseCase),
		Address:  handlers.NewAddressHandler(addressUseCase),
		Checkout: handlers.NewCheckoutHandler(checkoutUseCase, mockMode),
	}, repos.close, nil
}

func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	router.GET("/health", handlers.Health)
	router.POST("/login", h.Auth.Login)
	router.GET("/coupons", h.Coupon.List)

	// Rotas autenticadas
	addSacolaRoutes(router.Group(PathSacola, h.Auth.RequireAuth()), h)

	router.NoRoute(handlers.NotFound)
	return router
}
