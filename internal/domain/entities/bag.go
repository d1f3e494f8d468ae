package entities

// ShippingQuote is derived from a CEP and the current subtotal. Never persisted.
type ShippingQuote struct {
	Cost          float64  `json:"cost"`
	EstimatedDays int      `json:"estimatedDays"`
	RegionName    string   `json:"regionName"`
	FreeShipping  bool     `json:"freeShipping"`
	OriginalCost  *float64 `json:"originalCost,omitempty"`
}

// CartSummary is always recomputed from items, address and coupon.
//
// Total may be negative when a fixed coupon exceeds subtotal + shipping.
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Bag is the full view of a user's sacola.
type Bag struct {
	Items        []CartItem     `json:"items"`
	Address      *Address       `json:"address"`
	ShippingInfo *ShippingQuote `json:"shippingInfo"`
	Coupon       *Coupon        `json:"coupon"`
	Summary      CartSummary    `json:"summary"`
}
