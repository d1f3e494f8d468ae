package usecase

import (
	"context"
	"errors"
	"sacola_api/internal/domain/entities"
	"sacola_api/internal/domain/pricing"
	"sacola_api/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidItem     = errors.New("incomplete product data")
	ErrInvalidItemID   = errors.New("invalid item id")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrItemNotFound    = errors.New("item not found")
)

// AddItemInput carries the product snapshot stored in the bag.
type AddItemInput struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
	Image     string
}

// ShippingQuoteResult is the frete for a CEP against the current bag subtotal.
type ShippingQuoteResult struct {
	CEP      string
	Subtotal float64
	Quote    entities.ShippingQuote
}

// IBagUseCase exposes the sacola operations of a single user.
//
//go:generate mockgen -source=bag_usecase.go -destination=../adapter/http/handlers/mocks/bag_usecase_mock.go -package=mocks

type IBagUseCase interface {
	GetBag(ctx context.Context, userID string) (entities.Bag, error)
	GetSummary(ctx context.Context, userID string) (entities.CartSummary, error)
	AddItem(ctx context.Context, userID string, in AddItemInput) (item entities.CartItem, created bool, err error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (entities.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
	QuoteShipping(ctx context.Context, userID, cep string) (ShippingQuoteResult, error)
}

type BagUseCase struct {
	items     interfaces.ICartItemRepository
	addresses interfaces.IAddressRepository
	coupons   interfaces.ICouponRepository
	engine    *pricing.Engine
}

var _ IBagUseCase = (*BagUseCase)(nil)

func NewBagUseCase(items interfaces.ICartItemRepository, addresses interfaces.IAddressRepository, coupons interfaces.ICouponRepository, engine *pricing.Engine) *BagUseCase {
	return &BagUseCase{items: items, addresses: addresses, coupons: coupons, engine: engine}
}

func (u *BagUseCase) GetBag(ctx context.Context, userID string) (entities.Bag, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return entities.Bag{}, err
	}

	items, err := u.items.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Bag{}, err
	}
	if items == nil {
		items = []entities.CartItem{}
	}

	var address *entities.Address
	addr, err := u.addresses.GetDefault(ctx, userID)
	if err != nil {
		return entities.Bag{}, err
	}
	if addr.ID != "" {
		address = &addr
	}

	var coupon *entities.Coupon
	applied, err := u.coupons.GetApplied(ctx, userID)
	if err != nil {
		return entities.Bag{}, err
	}
	if applied.UserID != "" && applied.Coupon.Code != "" {
		coupon = &applied.Coupon
	}

	summary, quote := u.engine.Summarize(items, address, coupon)
	return entities.Bag{
		Items:        items,
		Address:      address,
		ShippingInfo: quote,
		Coupon:       coupon,
		Summary:      summary,
	}, nil
}

func (u *BagUseCase) GetSummary(ctx context.Context, userID string) (entities.CartSummary, error) {
	bag, err := u.GetBag(ctx, userID)
	if err != nil {
		return entities.CartSummary{}, err
	}
	return bag.Summary, nil
}

// AddItem merges into the existing line of the same product or inserts a new one.
func (u *BagUseCase) AddItem(ctx context.Context, userID string, in AddItemInput) (entities.CartItem, bool, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return entities.CartItem{}, false, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.ProductID <= 0 || in.Name == "" || in.UnitPrice <= 0 || in.Quantity <= 0 {
		return entities.CartItem{}, false, ErrInvalidItem
	}

	existing, err := u.items.GetByUserAndProduct(ctx, userID, in.ProductID)
	if err != nil {
		return entities.CartItem{}, false, err
	}
	if existing.ID != "" {
		updated, err := u.items.IncrementQuantity(ctx, userID, existing.ID, in.Quantity)
		if err != nil {
			return entities.CartItem{}, false, err
		}
		if updated.ID != "" {
			zap.L().Info("[bag][usecase] quantity merged",
				zap.String("user_id", userID),
				zap.Int64("product_id", in.ProductID),
				zap.Int("quantity", updated.Quantity))
			return updated, false, nil
		}
		// removed between read and update: insert below
	}

	now := time.Now().UTC()
	item := entities.CartItem{
		ID:        entities.CartItemID(userID, in.ProductID),
		UserID:    userID,
		ProductID: in.ProductID,
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		Quantity:  in.Quantity,
		Image:     strings.TrimSpace(in.Image),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.items.Create(ctx, item)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		// a concurrent add inserted the same product first
		updated, err := u.items.IncrementQuantity(ctx, userID, item.ID, in.Quantity)
		if err != nil {
			return entities.CartItem{}, false, err
		}
		return updated, false, nil
	}
	if err != nil {
		return entities.CartItem{}, false, err
	}
	zap.L().Info("[bag][usecase] item added",
		zap.String("user_id", userID),
		zap.Int64("product_id", in.ProductID),
		zap.String("item_id", created.ID))
	return created, true, nil
}

func (u *BagUseCase) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (entities.CartItem, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return entities.CartItem{}, err
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.CartItem{}, ErrInvalidItemID
	}
	if quantity < 1 {
		return entities.CartItem{}, ErrInvalidQuantity
	}

	updated, err := u.items.UpdateQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		return entities.CartItem{}, err
	}
	if updated.ID == "" {
		return entities.CartItem{}, ErrItemNotFound
	}
	return updated, nil
}

func (u *BagUseCase) RemoveItem(ctx context.Context, userID, itemID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrInvalidItemID
	}

	deleted, err := u.items.Delete(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}

func (u *BagUseCase) Clear(ctx context.Context, userID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}
	return u.items.DeleteByUserID(ctx, userID)
}

func (u *BagUseCase) QuoteShipping(ctx context.Context, userID, cep string) (ShippingQuoteResult, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return ShippingQuoteResult{}, err
	}
	if strings.TrimSpace(cep) == "" {
		return ShippingQuoteResult{}, ErrCEPRequired
	}
	clean, err := pricing.ValidateCEP(cep)
	if err != nil {
		return ShippingQuoteResult{}, err
	}

	items, err := u.items.ListByUserID(ctx, userID)
	if err != nil {
		return ShippingQuoteResult{}, err
	}
	quote, subtotal, err := u.engine.QuoteItems(clean, items)
	if err != nil {
		return ShippingQuoteResult{}, err
	}
	return ShippingQuoteResult{CEP: clean, Subtotal: subtotal, Quote: quote}, nil
}

func normalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrInvalidUserID
	}
	return userID, nil
}
