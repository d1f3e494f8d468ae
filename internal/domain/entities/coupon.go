package entities

import "time"

type CouponKind string

const (
	CouponKindPercentage CouponKind = "percentage"
	CouponKindFixed      CouponKind = "fixed"
)

// Coupon is static reference data. Codes are stored upper-case.
type Coupon struct {
	Code        string     `json:"code"`
	Kind        CouponKind `json:"type"`
	Value       float64    `json:"value"`
	Description string     `json:"description"`
}

// AppliedCoupon is the single active coupon of a user.
type AppliedCoupon struct {
	UserID     string    `json:"userId"`
	CouponCode string    `json:"couponCode"`
	AppliedAt  time.Time `json:"appliedAt"`
	Coupon     Coupon    `json:"coupon"`
}

// DefaultCoupons is the catalogue seeded on first run.
func DefaultCoupons() []Coupon {
	return []Coupon{
		{Code: "DESC10", Kind: CouponKindPercentage, Value: 10, Description: "10% de desconto"},
		{Code: "DESC20", Kind: CouponKindPercentage, Value: 20, Description: "20% de desconto"},
		{Code: "FRETE", Kind: CouponKindFixed, Value: 15.90, Description: "Frete grátis"},
		{Code: "BEM-VINDO", Kind: CouponKindFixed, Value: 50, Description: "R$ 50 de desconto"},
	}
}
