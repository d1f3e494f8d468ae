package response

import (
	"encoding/json"
	"testing"
	"time"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase"
)

func TestFromBag_EmptyBagKeepsNullSections(t *testing.T) {
	res := FromBag(entities.Bag{})

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	items, ok := body["items"].([]any)
	if !ok || len(items) != 0 {
		t.Fatalf("expected empty items array, got %v", body["items"])
	}
	for _, k := range []string{"address", "shippingInfo", "coupon"} {
		if v, present := body[k]; !present || v != nil {
			t.Fatalf("expected %s to be null, got %v", k, v)
		}
	}
}

func TestFromBag_Full(t *testing.T) {
	original := 15.9
	b := entities.Bag{
		Items: []entities.CartItem{{ID: "i1", ProductID: 7, Name: "Tênis", UnitPrice: 199.9, Quantity: 1}},
		Address: &entities.Address{
			ID: "a1", CEP: "01310100", Street: "Av. Paulista", City: "São Paulo", State: "SP", IsDefault: true,
		},
		ShippingInfo: &entities.ShippingQuote{Cost: 0, EstimatedDays: 3, RegionName: "São Paulo - Capital", FreeShipping: true, OriginalCost: &original},
		Coupon:       &entities.Coupon{Code: "DESC10", Kind: entities.CouponKindPercentage, Value: 10, Description: "10% de desconto"},
		Summary:      entities.CartSummary{Subtotal: 199.9, Shipping: 0, Discount: 19.99, Total: 179.91},
	}

	res := FromBag(b)
	if len(res.Items) != 1 || res.Items[0].Price != 199.9 || res.Items[0].ProductID != 7 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Address == nil || res.Address.Street != "Av. Paulista" {
		t.Fatalf("unexpected address: %+v", res.Address)
	}
	if res.ShippingInfo == nil || res.ShippingInfo.OriginalCost == nil || *res.ShippingInfo.OriginalCost != 15.9 {
		t.Fatalf("unexpected shipping: %+v", res.ShippingInfo)
	}
	if res.Coupon == nil || res.Coupon.Type != "percentage" {
		t.Fatalf("unexpected coupon: %+v", res.Coupon)
	}
	if res.Summary.Total != 179.91 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}

	raw, _ := json.Marshal(res.Address)
	var addr map[string]any
	_ = json.Unmarshal(raw, &addr)
	if addr["logradouro"] != "Av. Paulista" || addr["cidade"] != "São Paulo" {
		t.Fatalf("expected portuguese address keys, got %v", addr)
	}
	if _, ok := addr["shipping"]; ok {
		t.Fatalf("bag address must not embed shipping")
	}
}

func TestFromShippingQuoteResult_Flattened(t *testing.T) {
	res := FromShippingQuoteResult(usecase.ShippingQuoteResult{
		CEP:      "20040002",
		Subtotal: 50,
		Quote:    entities.ShippingQuote{Cost: 18.9, EstimatedDays: 4, RegionName: "Rio de Janeiro"},
	})

	raw, _ := json.Marshal(res)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["cep"] != "20040002" || body["cost"] != 18.9 || body["regionName"] != "Rio de Janeiro" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["originalCost"]; ok {
		t.Fatalf("originalCost must be omitted when shipping is charged")
	}
}

func TestFromAddressWithShipping(t *testing.T) {
	res := FromAddressWithShipping(usecase.AddressWithShipping{
		Address:  entities.Address{ID: "a1", CEP: "30140071"},
		Shipping: entities.ShippingQuote{Cost: 15.9, EstimatedDays: 7, RegionName: "Outras regiões"},
	})
	if res.Shipping == nil || res.Shipping.Cost != 15.9 || res.CEP != "30140071" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromLoginResult(t *testing.T) {
	cases := map[time.Duration]string{
		24 * time.Hour:   "24h",
		2 * time.Hour:    "2h",
		90 * time.Minute: "1h30m0s",
	}
	for ttl, want := range cases {
		got := FromLoginResult(usecase.LoginResult{Token: "t", Email: "a@b.com", ExpiresIn: ttl})
		if got.ExpiresIn != want {
			t.Fatalf("ttl %s: expected %q, got %q", ttl, want, got.ExpiresIn)
		}
	}
}

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:                 "pay-1",
		Amount:             115.9,
		Status:             entities.PaymentStatusAprovado,
		Date:               now,
		Items:              2,
		Summary:            entities.CartSummary{Subtotal: 100, Shipping: 15.9, Total: 115.9},
		ProviderPayloadRaw: []byte(`{"status":"approved"}`),
		ProviderPayload:    map[string]interface{}{"status": "approved"},
	}

	res := FromPayment(p)
	if res.PaymentID != "pay-1" || res.ID != "pay-1" || res.Status != "aprovado" {
		t.Fatalf("unexpected payment: %+v", res)
	}
	if res.MPPayloadRaw != `{"status":"approved"}` || res.MPPayload["status"] != "approved" {
		t.Fatalf("unexpected payload: %+v", res)
	}
	if list := FromPayments([]entities.Payment{p, p}); len(list) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(list))
	}
}

func TestEnvelope(t *testing.T) {
	raw, _ := json.Marshal(OKMessage(nil, "Cupom removido"))
	if string(raw) != `{"success":true,"message":"Cupom removido"}` {
		t.Fatalf("unexpected envelope: %s", raw)
	}
	raw, _ = json.Marshal(OK([]int{}))
	if string(raw) != `{"success":true,"data":[]}` {
		t.Fatalf("unexpected envelope: %s", raw)
	}
}
