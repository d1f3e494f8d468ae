package response

import (
	"time"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase"
)

type CartItemResponse struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ShippingResponse struct {
	Cost          float64  `json:"cost"`
	EstimatedDays int      `json:"estimatedDays"`
	RegionName    string   `json:"regionName"`
	FreeShipping  bool     `json:"freeShipping"`
	OriginalCost  *float64 `json:"originalCost,omitempty"`
}

type SummaryResponse struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type CouponResponse struct {
	Code        string  `json:"code"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

type AppliedCouponResponse struct {
	Coupon    CouponResponse `json:"coupon"`
	AppliedAt time.Time      `json:"appliedAt"`
}

type BagResponse struct {
	Items        []CartItemResponse `json:"items"`
	Address      *AddressResponse   `json:"address"`
	ShippingInfo *ShippingResponse  `json:"shippingInfo"`
	Coupon       *CouponResponse    `json:"coupon"`
	Summary      SummaryResponse    `json:"summary"`
}

// ShippingQuoteResponse is the /sacola/frete body: the quote flattened with cep and subtotal.
type ShippingQuoteResponse struct {
	CEP      string  `json:"cep"`
	Subtotal float64 `json:"subtotal"`
	ShippingResponse
}

func FromCartItem(it entities.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        it.ID,
		ProductID: it.ProductID,
		Name:      it.Name,
		Price:     it.UnitPrice,
		Quantity:  it.Quantity,
		Image:     it.Image,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func FromShippingQuote(q entities.ShippingQuote) ShippingResponse {
	return ShippingResponse{
		Cost:          q.Cost,
		EstimatedDays: q.EstimatedDays,
		RegionName:    q.RegionName,
		FreeShipping:  q.FreeShipping,
		OriginalCost:  q.OriginalCost,
	}
}

func FromSummary(s entities.CartSummary) SummaryResponse {
	return SummaryResponse{Subtotal: s.Subtotal, Shipping: s.Shipping, Discount: s.Discount, Total: s.Total}
}

func FromCoupon(c entities.Coupon) CouponResponse {
	return CouponResponse{Code: c.Code, Type: string(c.Kind), Value: c.Value, Description: c.Description}
}

func FromCoupons(list []entities.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCoupon(c))
	}
	return out
}

func FromAppliedCoupon(a entities.AppliedCoupon) AppliedCouponResponse {
	return AppliedCouponResponse{Coupon: FromCoupon(a.Coupon), AppliedAt: a.AppliedAt}
}

func FromBag(b entities.Bag) BagResponse {
	items := make([]CartItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, FromCartItem(it))
	}
	res := BagResponse{Items: items, Summary: FromSummary(b.Summary)}
	if b.Address != nil {
		a := FromAddress(*b.Address)
		res.Address = &a
	}
	if b.ShippingInfo != nil {
		s := FromShippingQuote(*b.ShippingInfo)
		res.ShippingInfo = &s
	}
	if b.Coupon != nil {
		c := FromCoupon(*b.Coupon)
		res.Coupon = &c
	}
	return res
}

func FromShippingQuoteResult(r usecase.ShippingQuoteResult) ShippingQuoteResponse {
	return ShippingQuoteResponse{
		CEP:              r.CEP,
		Subtotal:         r.Subtotal,
		ShippingResponse: FromShippingQuote(r.Quote),
	}
}
