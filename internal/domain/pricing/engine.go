// Package pricing computes shipping quotes, coupon discounts and bag summaries.
//
// Everything here is pure: no I/O, no clock, no shared mutable state. Money is
// carried as decimal.Decimal internally and rounded to 2 places only when a
// value leaves the engine.
package pricing

import (
	"errors"
	"strconv"
	"strings"

	"sacola_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidCEP = errors.New("invalid cep: must contain 8 digits")

const cepLength = 8

var hundred = decimal.NewFromInt(100)

type Engine struct {
	cfg Config
}

// NewEngine builds an engine. Missing bands or fallback fall back to the
// default frete table.
func NewEngine(cfg Config) *Engine {
	if len(cfg.Bands) == 0 {
		cfg.Bands = DefaultBands()
	}
	if cfg.Fallback.RegionName == "" {
		cfg.Fallback = DefaultFallback()
	}
	return &Engine{cfg: cfg}
}

// NormalizeCEP strips every non-digit character.
func NormalizeCEP(cep string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cep)
}

// ValidateCEP returns the normalised CEP or ErrInvalidCEP.
func ValidateCEP(cep string) (string, error) {
	clean := NormalizeCEP(cep)
	if len(clean) != cepLength {
		return "", ErrInvalidCEP
	}
	return clean, nil
}

// QuoteShipping returns the frete for a CEP given the bag subtotal.
func (e *Engine) QuoteShipping(cep string, subtotal float64) (entities.ShippingQuote, error) {
	return e.quote(cep, decimal.NewFromFloat(subtotal))
}

// QuoteItems quotes the frete for a bag. The threshold is checked on the exact
// subtotal; only the returned subtotal is rounded.
func (e *Engine) QuoteItems(cep string, items []entities.CartItem) (entities.ShippingQuote, float64, error) {
	subtotal := e.Subtotal(items)
	q, err := e.quote(cep, subtotal)
	if err != nil {
		return entities.ShippingQuote{}, 0, err
	}
	return q, round2(subtotal), nil
}

func (e *Engine) quote(cep string, subtotal decimal.Decimal) (entities.ShippingQuote, error) {
	clean, err := ValidateCEP(cep)
	if err != nil {
		return entities.ShippingQuote{}, err
	}
	region, err := strconv.Atoi(clean[:2])
	if err != nil {
		return entities.ShippingQuote{}, ErrInvalidCEP
	}

	b := e.regionBand(region)
	q := entities.ShippingQuote{
		Cost:          round2(b.Cost),
		EstimatedDays: b.EstimatedDays,
		RegionName:    b.RegionName,
	}
	if e.qualifiesForFreeShipping(subtotal) {
		original := q.Cost
		q.Cost = 0
		q.FreeShipping = true
		q.OriginalCost = &original
	}
	return q, nil
}

func (e *Engine) regionBand(region int) RegionBand {
	for _, b := range e.cfg.Bands {
		if b.contains(region) {
			return b
		}
	}
	return e.cfg.Fallback
}

func (e *Engine) qualifiesForFreeShipping(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(e.cfg.FreeShippingThreshold)
}

// Subtotal is the sum of unit price times quantity over all items.
func (e *Engine) Subtotal(items []entities.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Discount of a coupon over a subtotal. Fixed discounts are not capped.
func (e *Engine) Discount(c entities.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	value := decimal.NewFromFloat(c.Value)
	switch c.Kind {
	case entities.CouponKindPercentage:
		return subtotal.Mul(value).Div(hundred)
	case entities.CouponKindFixed:
		return value
	default:
		return decimal.Zero
	}
}

// Summarize composes the bag summary.
//
// With a default address the shipping comes from its CEP; without one (or if
// the stored CEP no longer validates) the flat rule applies: free above the
// threshold, DefaultShippingCost otherwise. The returned quote is nil in the
// flat case.
func (e *Engine) Summarize(items []entities.CartItem, address *entities.Address, coupon *entities.Coupon) (entities.CartSummary, *entities.ShippingQuote) {
	subtotal := e.Subtotal(items)

	shipping := e.cfg.DefaultShippingCost
	if e.qualifiesForFreeShipping(subtotal) {
		shipping = decimal.Zero
	}

	var quote *entities.ShippingQuote
	if address != nil && address.CEP != "" {
		if q, err := e.quote(address.CEP, subtotal); err == nil {
			quote = &q
			shipping = decimal.NewFromFloat(q.Cost)
		}
	}

	discount := decimal.Zero
	if coupon != nil {
		discount = e.Discount(*coupon, subtotal)
	}

	total := subtotal.Add(shipping).Sub(discount)
	return entities.CartSummary{
		Subtotal: round2(subtotal),
		Shipping: round2(shipping),
		Discount: round2(discount),
		Total:    round2(total),
	}, quote
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
