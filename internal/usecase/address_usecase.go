package usecase

import (
	"context"
	"errors"
	"sacola_api/internal/domain/entities"
	"sacola_api/internal/domain/pricing"
	"sacola_api/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCEPRequired     = errors.New("cep is required")
	ErrAddressNotFound = errors.New("address not found")
)

type AddressInput struct {
	CEP          string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
}

// AddressWithShipping pairs the default address with its frete for the current bag.
type AddressWithShipping struct {
	Address  entities.Address
	Shipping entities.ShippingQuote
}

//go:generate mockgen -source=address_usecase.go -destination=../adapter/http/handlers/mocks/address_usecase_mock.go -package=mocks

type IAddressUseCase interface {
	SetAddress(ctx context.Context, userID string, in AddressInput) (AddressWithShipping, error)
	GetDefault(ctx context.Context, userID string) (AddressWithShipping, error)
	List(ctx context.Context, userID string) ([]entities.Address, error)
}

type AddressUseCase struct {
	addresses interfaces.IAddressRepository
	items     interfaces.ICartItemRepository
	engine    *pricing.Engine
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(addresses interfaces.IAddressRepository, items interfaces.ICartItemRepository, engine *pricing.Engine) *AddressUseCase {
	return &AddressUseCase{addresses: addresses, items: items, engine: engine}
}

// SetAddress validates the CEP, then swaps the user's default address.
//
// Nothing is written unless the CEP is valid; the swap itself is atomic in the
// repository.
func (u *AddressUseCase) SetAddress(ctx context.Context, userID string, in AddressInput) (AddressWithShipping, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return AddressWithShipping{}, err
	}
	if strings.TrimSpace(in.CEP) == "" {
		return AddressWithShipping{}, ErrCEPRequired
	}
	cep, err := pricing.ValidateCEP(in.CEP)
	if err != nil {
		return AddressWithShipping{}, err
	}

	items, err := u.items.ListByUserID(ctx, userID)
	if err != nil {
		return AddressWithShipping{}, err
	}
	quote, _, err := u.engine.QuoteItems(cep, items)
	if err != nil {
		return AddressWithShipping{}, err
	}

	addr := entities.Address{
		ID:           uuid.NewString(),
		UserID:       userID,
		CEP:          cep,
		Street:       strings.TrimSpace(in.Street),
		Number:       strings.TrimSpace(in.Number),
		Complement:   strings.TrimSpace(in.Complement),
		Neighborhood: strings.TrimSpace(in.Neighborhood),
		City:         strings.TrimSpace(in.City),
		State:        strings.ToUpper(strings.TrimSpace(in.State)),
		IsDefault:    true,
		CreatedAt:    time.Now().UTC(),
	}
	saved, err := u.addresses.ReplaceDefault(ctx, addr)
	if err != nil {
		return AddressWithShipping{}, err
	}
	zap.L().Info("[address][usecase] default address replaced",
		zap.String("user_id", userID),
		zap.String("cep", cep),
		zap.String("region", quote.RegionName))

	return AddressWithShipping{Address: saved, Shipping: quote}, nil
}

func (u *AddressUseCase) GetDefault(ctx context.Context, userID string) (AddressWithShipping, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return AddressWithShipping{}, err
	}

	addr, err := u.addresses.GetDefault(ctx, userID)
	if err != nil {
		return AddressWithShipping{}, err
	}
	if addr.ID == "" {
		return AddressWithShipping{}, ErrAddressNotFound
	}

	items, err := u.items.ListByUserID(ctx, userID)
	if err != nil {
		return AddressWithShipping{}, err
	}
	quote, _, err := u.engine.QuoteItems(addr.CEP, items)
	if err != nil {
		return AddressWithShipping{}, err
	}
	return AddressWithShipping{Address: addr, Shipping: quote}, nil
}

func (u *AddressUseCase) List(ctx context.Context, userID string) ([]entities.Address, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	return u.addresses.ListByUserID(ctx, userID)
}
