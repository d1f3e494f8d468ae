package usecase

import (
	"context"
	"errors"
	"testing"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/domain/pricing"
	"sacola_api/internal/usecase/interfaces"
	mock_interfaces "sacola_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type bagMocks struct {
	items     *mock_interfaces.MockICartItemRepository
	addresses *mock_interfaces.MockIAddressRepository
	coupons   *mock_interfaces.MockICouponRepository
}

func newBagUseCase(t *testing.T) (*BagUseCase, bagMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := bagMocks{
		items:     mock_interfaces.NewMockICartItemRepository(ctrl),
		addresses: mock_interfaces.NewMockIAddressRepository(ctrl),
		coupons:   mock_interfaces.NewMockICouponRepository(ctrl),
	}
	uc := NewBagUseCase(m.items, m.addresses, m.coupons, pricing.NewEngine(pricing.DefaultConfig()))
	return uc, m
}

func TestBagUseCase_AddItem(t *testing.T) {
	valid := AddItemInput{ProductID: 1, Name: "Tênis", UnitPrice: 99.90, Quantity: 1}

	t.Run("invalid user", func(t *testing.T) {
		uc, _ := newBagUseCase(t)
		_, _, err := uc.AddItem(context.Background(), "  ", valid)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("incomplete product data", func(t *testing.T) {
		cases := map[string]AddItemInput{
			"no product":    {Name: "x", UnitPrice: 1, Quantity: 1},
			"no name":       {ProductID: 1, Name: "  ", UnitPrice: 1, Quantity: 1},
			"zero price":    {ProductID: 1, Name: "x", Quantity: 1},
			"zero quantity": {ProductID: 1, Name: "x", UnitPrice: 1},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				uc, _ := newBagUseCase(t)
				_, _, err := uc.AddItem(context.Background(), "a@b.com", in)
				if !errors.Is(err, ErrInvalidItem) {
					t.Fatalf("expected ErrInvalidItem, got %v", err)
				}
			})
		}
	})

	t.Run("creates new line", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().GetByUserAndProduct(gomock.Any(), "a@b.com", int64(1)).Return(entities.CartItem{}, nil)
		m.items.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CartItem{})).DoAndReturn(
			func(_ context.Context, it entities.CartItem) (entities.CartItem, error) {
				if it.ID != entities.CartItemID("a@b.com", 1) || it.Quantity != 1 || it.Name != "Tênis" {
					t.Fatalf("unexpected item: %+v", it)
				}
				if it.CreatedAt.IsZero() || it.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return it, nil
			},
		)

		item, created, err := uc.AddItem(context.Background(), " a@b.com ", valid)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !created || item.UserID != "a@b.com" {
			t.Fatalf("unexpected result: created=%v item=%+v", created, item)
		}
	})

	t.Run("merges into existing line", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		existing := entities.CartItem{ID: "it-1", UserID: "a@b.com", ProductID: 1, Quantity: 1}
		m.items.EXPECT().GetByUserAndProduct(gomock.Any(), "a@b.com", int64(1)).Return(existing, nil)
		m.items.EXPECT().IncrementQuantity(gomock.Any(), "a@b.com", "it-1", 2).Return(entities.CartItem{ID: "it-1", Quantity: 3}, nil)

		in := valid
		in.Quantity = 2
		item, created, err := uc.AddItem(context.Background(), "a@b.com", in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if created || item.Quantity != 3 {
			t.Fatalf("expected merged quantity 3, got created=%v qty=%d", created, item.Quantity)
		}
	})

	t.Run("concurrent insert falls back to increment", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		id := entities.CartItemID("a@b.com", 1)
		m.items.EXPECT().GetByUserAndProduct(gomock.Any(), "a@b.com", int64(1)).Return(entities.CartItem{}, nil)
		m.items.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CartItem{}, interfaces.ErrAlreadyExists)
		m.items.EXPECT().IncrementQuantity(gomock.Any(), "a@b.com", id, 1).Return(entities.CartItem{ID: id, Quantity: 2}, nil)

		item, created, err := uc.AddItem(context.Background(), "a@b.com", valid)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if created || item.Quantity != 2 {
			t.Fatalf("unexpected result: created=%v item=%+v", created, item)
		}
	})

	t.Run("line removed before increment is recreated", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().GetByUserAndProduct(gomock.Any(), "a@b.com", int64(1)).Return(entities.CartItem{ID: "it-1"}, nil)
		m.items.EXPECT().IncrementQuantity(gomock.Any(), "a@b.com", "it-1", 1).Return(entities.CartItem{}, nil)
		m.items.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.CartItem) (entities.CartItem, error) { return it, nil },
		)

		_, created, err := uc.AddItem(context.Background(), "a@b.com", valid)
		if err != nil || !created {
			t.Fatalf("expected created, got created=%v err=%v", created, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().GetByUserAndProduct(gomock.Any(), "a@b.com", int64(1)).Return(entities.CartItem{}, errors.New("db"))

		_, _, err := uc.AddItem(context.Background(), "a@b.com", valid)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBagUseCase_UpdateQuantity(t *testing.T) {
	t.Run("quantity below one is rejected", func(t *testing.T) {
		uc, _ := newBagUseCase(t)
		for _, q := range []int{0, -1} {
			_, err := uc.UpdateQuantity(context.Background(), "a@b.com", "it-1", q)
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", q, err)
			}
		}
	})

	t.Run("empty item id", func(t *testing.T) {
		uc, _ := newBagUseCase(t)
		_, err := uc.UpdateQuantity(context.Background(), "a@b.com", " ", 2)
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("item of another user is not found", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().UpdateQuantity(gomock.Any(), "b@b.com", "it-1", 2).Return(entities.CartItem{}, nil)

		_, err := uc.UpdateQuantity(context.Background(), "b@b.com", "it-1", 2)
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().UpdateQuantity(gomock.Any(), "a@b.com", "it-1", 5).Return(entities.CartItem{ID: "it-1", Quantity: 5}, nil)

		item, err := uc.UpdateQuantity(context.Background(), "a@b.com", "it-1", 5)
		if err != nil || item.Quantity != 5 {
			t.Fatalf("unexpected result: %+v err=%v", item, err)
		}
	})
}

func TestBagUseCase_RemoveItemAndClear(t *testing.T) {
	t.Run("remove missing item", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().Delete(gomock.Any(), "a@b.com", "it-9").Return(false, nil)

		if err := uc.RemoveItem(context.Background(), "a@b.com", "it-9"); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("remove success", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().Delete(gomock.Any(), "a@b.com", "it-1").Return(true, nil)

		if err := uc.RemoveItem(context.Background(), "a@b.com", "it-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("clear", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().DeleteByUserID(gomock.Any(), "a@b.com").Return(nil)

		if err := uc.Clear(context.Background(), "a@b.com"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestBagUseCase_GetBag(t *testing.T) {
	items := []entities.CartItem{{ID: "it-1", UnitPrice: 50, Quantity: 2}}

	t.Run("empty bag without address", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().ListByUserID(gomock.Any(), "a@b.com").Return(nil, nil)
		m.addresses.EXPECT().GetDefault(gomock.Any(), "a@b.com").Return(entities.Address{}, nil)
		m.coupons.EXPECT().GetApplied(gomock.Any(), "a@b.com").Return(entities.AppliedCoupon{}, nil)

		bag, err := uc.GetBag(context.Background(), "a@b.com")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if bag.Items == nil || len(bag.Items) != 0 {
			t.Fatalf("expected empty non-nil items, got %#v", bag.Items)
		}
		if bag.Address != nil || bag.Coupon != nil || bag.ShippingInfo != nil {
			t.Fatalf("expected no address/coupon/quote: %+v", bag)
		}
		if bag.Summary.Shipping != 15.90 || bag.Summary.Total != 15.90 {
			t.Fatalf("unexpected summary: %+v", bag.Summary)
		}
	})

	t.Run("address and coupon", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().ListByUserID(gomock.Any(), "a@b.com").Return(items, nil)
		m.addresses.EXPECT().GetDefault(gomock.Any(), "a@b.com").Return(entities.Address{ID: "ad-1", CEP: "20040002"}, nil)
		m.coupons.EXPECT().GetApplied(gomock.Any(), "a@b.com").Return(entities.AppliedCoupon{
			UserID:     "a@b.com",
			CouponCode: "DESC10",
			Coupon:     entities.Coupon{Code: "DESC10", Kind: entities.CouponKindPercentage, Value: 10},
		}, nil)

		bag, err := uc.GetBag(context.Background(), "a@b.com")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if bag.ShippingInfo == nil || bag.ShippingInfo.RegionName != "Rio de Janeiro - RJ" {
			t.Fatalf("unexpected quote: %+v", bag.ShippingInfo)
		}
		want := entities.CartSummary{Subtotal: 100, Shipping: 19.90, Discount: 10, Total: 109.90}
		if bag.Summary != want {
			t.Fatalf("expected %+v, got %+v", want, bag.Summary)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().ListByUserID(gomock.Any(), "a@b.com").Return(nil, errors.New("db"))

		if _, err := uc.GetSummary(context.Background(), "a@b.com"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBagUseCase_QuoteShipping(t *testing.T) {
	t.Run("cep required", func(t *testing.T) {
		uc, _ := newBagUseCase(t)
		_, err := uc.QuoteShipping(context.Background(), "a@b.com", " ")
		if !errors.Is(err, ErrCEPRequired) {
			t.Fatalf("expected ErrCEPRequired, got %v", err)
		}
	})

	t.Run("invalid cep", func(t *testing.T) {
		uc, _ := newBagUseCase(t)
		_, err := uc.QuoteShipping(context.Background(), "a@b.com", "1234")
		if !errors.Is(err, pricing.ErrInvalidCEP) {
			t.Fatalf("expected ErrInvalidCEP, got %v", err)
		}
	})

	t.Run("free above threshold", func(t *testing.T) {
		uc, m := newBagUseCase(t)
		m.items.EXPECT().ListByUserID(gomock.Any(), "a@b.com").Return([]entities.CartItem{{UnitPrice: 100, Quantity: 2}}, nil)

		res, err := uc.QuoteShipping(context.Background(), "a@b.com", "01310-100")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.CEP != "01310100" || res.Subtotal != 200 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if !res.Quote.FreeShipping || res.Quote.Cost != 0 || res.Quote.OriginalCost == nil || *res.Quote.OriginalCost != 15.90 {
			t.Fatalf("unexpected quote: %+v", res.Quote)
		}
	})
}

func TestBagUseCase_QuoteShipping_AgreesWithBag(t *testing.T) {
	// 66.665 x 3 = 199.995: rounds to 200.00 but stays below the threshold.
	items := []entities.CartItem{{ID: "it-1", UnitPrice: 66.665, Quantity: 3}}
	uc, m := newBagUseCase(t)
	m.items.EXPECT().ListByUserID(gomock.Any(), "a@b.com").Return(items, nil).Times(2)
	m.addresses.EXPECT().GetDefault(gomock.Any(), "a@b.com").Return(entities.Address{ID: "ad-1", CEP: "01310100"}, nil)
	m.coupons.EXPECT().GetApplied(gomock.Any(), "a@b.com").Return(entities.AppliedCoupon{}, nil)

	bag, err := uc.GetBag(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	res, err := uc.QuoteShipping(context.Background(), "a@b.com", "01310100")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if res.Subtotal != 200 || bag.Summary.Subtotal != 200 {
		t.Fatalf("expected rounded subtotal 200, got quote=%v bag=%v", res.Subtotal, bag.Summary.Subtotal)
	}
	if res.Quote.FreeShipping || res.Quote.Cost != bag.Summary.Shipping || bag.Summary.Shipping != 15.90 {
		t.Fatalf("free-shipping decision differs: quote=%+v bag=%+v", res.Quote, bag.Summary)
	}
}
