package pricing

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"sacola_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type expectedBand struct {
	min, max int
	cost     float64
	days     int
	name     string
}

var frete = []expectedBand{
	{1, 9, 15.90, 2, "São Paulo - SP"},
	{10, 19, 22.90, 3, "Interior de São Paulo"},
	{20, 28, 19.90, 3, "Rio de Janeiro - RJ"},
	{30, 39, 25.90, 4, "Minas Gerais"},
	{40, 48, 32.90, 5, "Bahia"},
	{50, 56, 35.90, 6, "Pernambuco"},
	{60, 63, 38.90, 6, "Ceará"},
	{69, 69, 45.90, 8, "Região Norte"},
	{70, 73, 28.90, 4, "Brasília/Goiás"},
	{80, 87, 26.90, 4, "Paraná"},
	{88, 89, 29.90, 5, "Santa Catarina"},
	{90, 99, 31.90, 5, "Rio Grande do Sul"},
}

func expectedFor(region int) expectedBand {
	for _, b := range frete {
		if region >= b.min && region <= b.max {
			return b
		}
	}
	return expectedBand{cost: 35.90, days: 7, name: "Outras regiões"}
}

func TestNormalizeCEP(t *testing.T) {
	cases := map[string]string{
		"01310-100":   "01310100",
		" 01.310-100": "01310100",
		"abc":         "",
		"":            "",
		"123":         "123",
	}
	for in, want := range cases {
		if got := NormalizeCEP(in); got != want {
			t.Fatalf("NormalizeCEP(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEngine_QuoteShipping_InvalidCEP(t *testing.T) {
	e := NewEngine(DefaultConfig())
	for _, cep := range []string{"", "1234567", "123456789", "abcdefgh", "01310-10", "0131-01000", "01310-1000"} {
		_, err := e.QuoteShipping(cep, 50)
		if !errors.Is(err, ErrInvalidCEP) {
			t.Fatalf("cep %q: expected ErrInvalidCEP, got %v", cep, err)
		}
	}
}

func TestEngine_QuoteShipping_RegionTable(t *testing.T) {
	e := NewEngine(DefaultConfig())
	for region := 0; region <= 99; region++ {
		cep := fmt.Sprintf("%02d310-100", region)
		want := expectedFor(region)

		q, err := e.QuoteShipping(cep, 50)
		if err != nil {
			t.Fatalf("region %d: unexpected error: %v", region, err)
		}
		if q.Cost != want.cost || q.EstimatedDays != want.days || q.RegionName != want.name {
			t.Fatalf("region %d: got %+v, want %+v", region, q, want)
		}
		if q.FreeShipping || q.OriginalCost != nil {
			t.Fatalf("region %d: unexpected free shipping: %+v", region, q)
		}
	}
}

func TestEngine_QuoteShipping_SaoPaulo(t *testing.T) {
	e := NewEngine(DefaultConfig())
	for region := 1; region <= 9; region++ {
		q, err := e.QuoteShipping(fmt.Sprintf("%02d000000", region), 50.00)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost != 15.90 || q.EstimatedDays != 2 || q.RegionName != "São Paulo - SP" || q.FreeShipping {
			t.Fatalf("region %d: unexpected quote %+v", region, q)
		}
	}
}

func TestEngine_QuoteShipping_FreeShipping(t *testing.T) {
	e := NewEngine(DefaultConfig())

	t.Run("at and above threshold", func(t *testing.T) {
		for _, subtotal := range []float64{200, 200.01, 350.5, 10000} {
			for region := 0; region <= 99; region += 7 {
				q, err := e.QuoteShipping(fmt.Sprintf("%02d123456", region), subtotal)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				want := expectedFor(region)
				if q.Cost != 0 || !q.FreeShipping {
					t.Fatalf("expected free shipping, got %+v", q)
				}
				if q.OriginalCost == nil || *q.OriginalCost != want.cost {
					t.Fatalf("expected original cost %v, got %+v", want.cost, q.OriginalCost)
				}
			}
		}
	})

	t.Run("just below threshold", func(t *testing.T) {
		q, err := e.QuoteShipping("20040-020", 199.99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost != 19.90 || q.FreeShipping || q.OriginalCost != nil {
			t.Fatalf("unexpected quote %+v", q)
		}
	})
}

func TestEngine_QuoteShipping_Idempotent(t *testing.T) {
	e := NewEngine(DefaultConfig())
	for _, subtotal := range []float64{0, 50, 200} {
		a, errA := e.QuoteShipping("30130-010", subtotal)
		b, errB := e.QuoteShipping("30130-010", subtotal)
		if errA != nil || errB != nil {
			t.Fatalf("unexpected errors: %v %v", errA, errB)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("expected identical quotes, got %+v and %+v", a, b)
		}
	}
}

func TestEngine_Discount(t *testing.T) {
	e := NewEngine(DefaultConfig())
	subtotal := decimal.RequireFromString("100.00")

	cases := []struct {
		name   string
		coupon entities.Coupon
		want   string
	}{
		{"percentage", entities.Coupon{Kind: entities.CouponKindPercentage, Value: 10}, "10"},
		{"percentage 20", entities.Coupon{Kind: entities.CouponKindPercentage, Value: 20}, "20"},
		{"fixed", entities.Coupon{Kind: entities.CouponKindFixed, Value: 15.90}, "15.9"},
		{"fixed above subtotal", entities.Coupon{Kind: entities.CouponKindFixed, Value: 150}, "150"},
		{"unknown kind", entities.Coupon{Kind: "bogus", Value: 99}, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Discount(tc.coupon, subtotal)
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestEngine_Summarize(t *testing.T) {
	e := NewEngine(DefaultConfig())
	desc10 := entities.Coupon{Code: "DESC10", Kind: entities.CouponKindPercentage, Value: 10}
	bemVindo := entities.Coupon{Code: "BEM-VINDO", Kind: entities.CouponKindFixed, Value: 50}

	t.Run("empty bag without address", func(t *testing.T) {
		s, q := e.Summarize(nil, nil, nil)
		if q != nil {
			t.Fatalf("expected no quote")
		}
		if s != (entities.CartSummary{Subtotal: 0, Shipping: 15.90, Discount: 0, Total: 15.90}) {
			t.Fatalf("unexpected summary %+v", s)
		}
	})

	t.Run("percentage coupon on subtotal 100", func(t *testing.T) {
		items := []entities.CartItem{{UnitPrice: 50, Quantity: 2}}
		s, _ := e.Summarize(items, nil, &desc10)
		if s.Subtotal != 100 || s.Discount != 10 || s.Shipping != 15.90 || s.Total != 105.90 {
			t.Fatalf("unexpected summary %+v", s)
		}
	})

	t.Run("flat free shipping without address", func(t *testing.T) {
		items := []entities.CartItem{{UnitPrice: 100, Quantity: 2}}
		s, q := e.Summarize(items, nil, nil)
		if q != nil || s.Shipping != 0 || s.Total != 200 {
			t.Fatalf("unexpected summary %+v quote %+v", s, q)
		}
	})

	t.Run("address drives shipping", func(t *testing.T) {
		items := []entities.CartItem{{UnitPrice: 19.99, Quantity: 3}}
		addr := &entities.Address{CEP: "69005040"}
		s, q := e.Summarize(items, addr, nil)
		if q == nil || q.RegionName != "Região Norte" {
			t.Fatalf("unexpected quote %+v", q)
		}
		if s.Subtotal != 59.97 || s.Shipping != 45.90 || s.Total != 105.87 {
			t.Fatalf("unexpected summary %+v", s)
		}
	})

	t.Run("fixed coupon drives total negative", func(t *testing.T) {
		items := []entities.CartItem{{UnitPrice: 10, Quantity: 3}}
		addr := &entities.Address{CEP: "01310100"}
		s, _ := e.Summarize(items, addr, &bemVindo)
		if s.Subtotal != 30 || s.Shipping != 15.90 || s.Discount != 50 || s.Total != -4.10 {
			t.Fatalf("unexpected summary %+v", s)
		}
	})

	t.Run("stored cep that no longer validates uses flat rule", func(t *testing.T) {
		items := []entities.CartItem{{UnitPrice: 10, Quantity: 1}}
		s, q := e.Summarize(items, &entities.Address{CEP: "123"}, nil)
		if q != nil || s.Shipping != 15.90 {
			t.Fatalf("unexpected summary %+v quote %+v", s, q)
		}
	})

	t.Run("rounding happens once at the boundary", func(t *testing.T) {
		items := []entities.CartItem{{UnitPrice: 0.1, Quantity: 3}, {UnitPrice: 0.2, Quantity: 1}}
		s, _ := e.Summarize(items, nil, &entities.Coupon{Kind: entities.CouponKindPercentage, Value: 15})
		// subtotal 0.5, discount 0.075 -> 0.08, total 16.325 -> 16.33
		if s.Subtotal != 0.5 || s.Discount != 0.08 || s.Total != 16.33 {
			t.Fatalf("unexpected summary %+v", s)
		}
	})
}

func TestEngine_CustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FreeShippingThreshold = decimal.RequireFromString("100")
	cfg.DefaultShippingCost = decimal.RequireFromString("9.99")
	e := NewEngine(cfg)

	q, err := e.QuoteShipping("01310100", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.FreeShipping {
		t.Fatalf("expected free shipping with lowered threshold, got %+v", q)
	}

	s, _ := e.Summarize([]entities.CartItem{{UnitPrice: 20, Quantity: 1}}, nil, nil)
	if s.Shipping != 9.99 || s.Total != 29.99 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestNewEngine_FillsDefaults(t *testing.T) {
	e := NewEngine(Config{FreeShippingThreshold: decimal.NewFromInt(200), DefaultShippingCost: decimal.RequireFromString("15.90")})
	if len(e.cfg.Bands) != len(DefaultBands()) || e.cfg.Fallback.RegionName != "Outras regiões" {
		t.Fatalf("expected default bands, got %+v", e.cfg)
	}
}

func TestRound2(t *testing.T) {
	if got := round2(decimal.NewFromFloat(30 + 15.90 - 50)); got != -4.10 {
		t.Fatalf("expected -4.10, got %v", got)
	}
	if got := round2(decimal.NewFromFloat(0.125)); got != 0.13 {
		t.Fatalf("expected 0.13, got %v", got)
	}
}

func TestEngine_QuoteItems_MatchesSummary(t *testing.T) {
	e := NewEngine(DefaultConfig())
	// 66.665 x 3 = 199.995, which rounds to 200.00 but is below the threshold.
	items := []entities.CartItem{{UnitPrice: 66.665, Quantity: 3}}
	addr := &entities.Address{CEP: "01310100"}

	q, subtotal, err := e.QuoteItems("01310-100", items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subtotal != 200 {
		t.Fatalf("expected rounded subtotal 200, got %v", subtotal)
	}
	if q.FreeShipping || q.Cost != 15.90 {
		t.Fatalf("expected paid shipping below exact threshold, got %+v", q)
	}

	s, sq := e.Summarize(items, addr, nil)
	if sq == nil || sq.FreeShipping != q.FreeShipping || s.Shipping != q.Cost {
		t.Fatalf("summary and quote disagree: summary=%+v quote=%+v", s, q)
	}

	if _, _, err := e.QuoteItems("123", items); !errors.Is(err, ErrInvalidCEP) {
		t.Fatalf("expected ErrInvalidCEP, got %v", err)
	}
}
