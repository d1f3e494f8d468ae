package handlers

import (
	"errors"
	"net/http"
	"testing"

	"sacola_api/internal/adapter/http/handlers/mocks"
	"sacola_api/internal/domain/entities"
	"sacola_api/internal/domain/pricing"
	"sacola_api/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestBagHandler_GetBag(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBagUseCase(ctrl)
	r := newTestRouter()
	r.GET("/sacola", NewBagHandler(uc).GetBag)

	uc.EXPECT().GetBag(gomock.Any(), testUser).Return(entities.Bag{
		Items:   []entities.CartItem{{ID: "i1", ProductID: 1, Name: "Camiseta", UnitPrice: 49.9, Quantity: 2}},
		Summary: entities.CartSummary{Subtotal: 99.8, Shipping: 15.9, Total: 115.7},
	}, nil)

	w := doRequest(r, "GET", "/sacola", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	if items := data["items"].([]any); len(items) != 1 {
		t.Fatalf("unexpected items: %v", items)
	}
	if data["summary"].(map[string]any)["total"] != 115.7 {
		t.Fatalf("unexpected summary: %v", data["summary"])
	}
}

func TestBagHandler_AddItem(t *testing.T) {
	body := `{"productId":7,"name":"Tênis","price":199.9,"quantity":1}`

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBagUseCase(ctrl)
		r := newTestRouter()
		r.POST("/sacola/items", NewBagHandler(uc).AddItem)

		uc.EXPECT().AddItem(gomock.Any(), testUser, usecase.AddItemInput{ProductID: 7, Name: "Tênis", UnitPrice: 199.9, Quantity: 1}).
			Return(entities.CartItem{ID: "i1", ProductID: 7, Quantity: 1}, true, nil)

		w := doRequest(r, "POST", "/sacola/items", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Item adicionado à sacola" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("merged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBagUseCase(ctrl)
		r := newTestRouter()
		r.POST("/sacola/items", NewBagHandler(uc).AddItem)

		uc.EXPECT().AddItem(gomock.Any(), testUser, gomock.Any()).Return(entities.CartItem{ID: "i1", ProductID: 7, Quantity: 3}, false, nil)

		w := doRequest(r, "POST", "/sacola/items", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		b := decodeBody(t, w)
		if b["message"] != "Quantidade atualizada" || b["data"].(map[string]any)["quantity"] != float64(3) {
			t.Fatalf("unexpected body: %v", b)
		}
	})

	t.Run("incomplete product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBagUseCase(ctrl)
		r := newTestRouter()
		r.POST("/sacola/items", NewBagHandler(uc).AddItem)

		uc.EXPECT().AddItem(gomock.Any(), testUser, gomock.Any()).Return(entities.CartItem{}, false, usecase.ErrInvalidItem)

		w := doRequest(r, "POST", "/sacola/items", `{"productId":7}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_ITEM", "Dados incompletos do produto")
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newTestRouter()
		r.POST("/sacola/items", NewBagHandler(mocks.NewMockIBagUseCase(ctrl)).AddItem)

		w := doRequest(r, "POST", "/sacola/items", `{"productId":"x"`)
		expectError(t, w, http.StatusBadRequest, "INVALID_ITEM", "")
	})
}

func TestBagHandler_UpdateQuantity(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "invalid quantity", err: usecase.ErrInvalidQuantity, status: http.StatusBadRequest, code: "INVALID_QUANTITY"},
		{name: "not found", err: usecase.ErrItemNotFound, status: http.StatusNotFound, code: "ITEM_NOT_FOUND"},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIBagUseCase(ctrl)
			r := newTestRouter()
			r.PUT("/sacola/items/:itemId", NewBagHandler(uc).UpdateQuantity)

			uc.EXPECT().UpdateQuantity(gomock.Any(), testUser, "i1", 0).Return(entities.CartItem{}, tc.err)

			w := doRequest(r, "PUT", "/sacola/items/i1", `{"quantity":0}`)
			expectError(t, w, tc.status, tc.code, "")
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBagUseCase(ctrl)
		r := newTestRouter()
		r.PUT("/sacola/items/:itemId", NewBagHandler(uc).UpdateQuantity)

		uc.EXPECT().UpdateQuantity(gomock.Any(), testUser, "i1", 4).Return(entities.CartItem{ID: "i1", Quantity: 4}, nil)

		w := doRequest(r, "PUT", "/sacola/items/i1", `{"quantity":4}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBagHandler_RemoveAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBagUseCase(ctrl)
	h := NewBagHandler(uc)
	r := newTestRouter()
	r.DELETE("/sacola/items/:itemId", h.RemoveItem)
	r.DELETE("/sacola/items", h.Clear)

	uc.EXPECT().RemoveItem(gomock.Any(), testUser, "i1").Return(nil)
	uc.EXPECT().RemoveItem(gomock.Any(), testUser, "i2").Return(usecase.ErrItemNotFound)
	uc.EXPECT().Clear(gomock.Any(), testUser).Return(nil)

	if w := doRequest(r, "DELETE", "/sacola/items/i1", ""); w.Code != http.StatusOK || decodeBody(t, w)["message"] != "Item removido" {
		t.Fatalf("unexpected remove response: %d %s", w.Code, w.Body.String())
	}
	expectError(t, doRequest(r, "DELETE", "/sacola/items/i2", ""), http.StatusNotFound, "ITEM_NOT_FOUND", "Item não encontrado")
	if w := doRequest(r, "DELETE", "/sacola/items", ""); w.Code != http.StatusOK {
		t.Fatalf("unexpected clear response: %d", w.Code)
	}
}

func TestBagHandler_QuoteShipping(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBagUseCase(ctrl)
		r := newTestRouter()
		r.POST("/sacola/frete", NewBagHandler(uc).QuoteShipping)

		uc.EXPECT().QuoteShipping(gomock.Any(), testUser, "01310-100").Return(usecase.ShippingQuoteResult{
			CEP:      "01310100",
			Subtotal: 100,
			Quote:    entities.ShippingQuote{Cost: 12.9, EstimatedDays: 3, RegionName: "São Paulo - Capital"},
		}, nil)

		w := doRequest(r, "POST", "/sacola/frete", `{"cep":"01310-100"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if data["cep"] != "01310100" || data["cost"] != 12.9 || data["subtotal"] != float64(100) {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("cep errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBagUseCase(ctrl)
		r := newTestRouter()
		r.POST("/sacola/frete", NewBagHandler(uc).QuoteShipping)

		uc.EXPECT().QuoteShipping(gomock.Any(), testUser, "").Return(usecase.ShippingQuoteResult{}, usecase.ErrCEPRequired)
		uc.EXPECT().QuoteShipping(gomock.Any(), testUser, "123").Return(usecase.ShippingQuoteResult{}, pricing.ErrInvalidCEP)

		expectError(t, doRequest(r, "POST", "/sacola/frete", `{}`), http.StatusBadRequest, "CEP_REQUIRED", "CEP é obrigatório")
		expectError(t, doRequest(r, "POST", "/sacola/frete", `{"cep":"123"}`), http.StatusBadRequest, "INVALID_CEP", "CEP inválido. Deve conter 8 dígitos")
	})
}

func TestBagHandler_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBagUseCase(ctrl)
	r := newTestRouter()
	r.GET("/sacola/resumo", NewBagHandler(uc).GetSummary)

	uc.EXPECT().GetSummary(gomock.Any(), testUser).Return(entities.CartSummary{}, usecase.ErrInvalidUserID)

	expectError(t, doRequest(r, "GET", "/sacola/resumo", ""), http.StatusUnauthorized, "UNAUTHORIZED", "")
}
