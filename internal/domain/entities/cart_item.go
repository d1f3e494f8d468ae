package entities

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// CartItem is a product line in a user's bag (sacola).
//
// Storage model:
//   - PK: id (derived from user_id + product_id, see CartItemID)
//   - index: user_id
//
// Because the key is a function of (user, product), every store rejects a
// second row for the same product and the caller merges quantities instead.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID int64     `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var cartItemNamespace = uuid.MustParse("5d1c4c4e-8c0b-4f5e-9a57-3f3b9e1f2a61")

// CartItemID returns the stable item id for a product in a user's bag.
func CartItemID(userID string, productID int64) string {
	name := userID + "#" + strconv.FormatInt(productID, 10)
	return uuid.NewSHA1(cartItemNamespace, []byte(name)).String()
}
