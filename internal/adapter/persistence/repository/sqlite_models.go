package repository

import (
	"encoding/json"
	"time"

	"sacola_api/internal/domain/entities"

	"gorm.io/gorm"
)

type cartItemModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"not null;index;uniqueIndex:idx_cart_items_user_product"`
	ProductID int64  `gorm:"not null;uniqueIndex:idx_cart_items_user_product"`
	Name      string `gorm:"not null"`
	UnitPrice float64
	Quantity  int `gorm:"not null"`
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (cartItemModel) TableName() string { return "cart_items" }

type addressModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"not null;index"`
	CEP          string `gorm:"size:8;not null"`
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string `gorm:"size:2"`
	IsDefault    bool   `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
}

func (addressModel) TableName() string { return "addresses" }

type couponModel struct {
	Code        string `gorm:"primaryKey"`
	Kind        string `gorm:"not null"`
	Value       float64
	Description string
}

func (couponModel) TableName() string { return "coupons" }

// appliedCouponModel is keyed by user: one active coupon per user.
type appliedCouponModel struct {
	UserID     string `gorm:"primaryKey"`
	CouponCode string `gorm:"not null"`
	AppliedAt  time.Time
}

func (appliedCouponModel) TableName() string { return "applied_coupons" }

type userModel struct {
	Email     string `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (userModel) TableName() string { return "users" }

type paymentModel struct {
	ID         string `gorm:"primaryKey"`
	UserID     string `gorm:"not null;index"`
	Amount     float64
	Status     string `gorm:"not null"`
	Date       time.Time
	Subtotal   float64
	Shipping   float64
	Discount   float64
	Total      float64
	Items      int
	PayloadRaw string `gorm:"type:text"`
}

func (paymentModel) TableName() string { return "payments" }

// AutoMigrate creates or updates the SQLite schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&cartItemModel{},
		&addressModel{},
		&couponModel{},
		&appliedCouponModel{},
		&userModel{},
		&paymentModel{},
	)
}

func toCartItemModel(it entities.CartItem) cartItemModel {
	return cartItemModel{
		ID:        it.ID,
		UserID:    it.UserID,
		ProductID: it.ProductID,
		Name:      it.Name,
		UnitPrice: it.UnitPrice,
		Quantity:  it.Quantity,
		Image:     it.Image,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func (m cartItemModel) toEntity() entities.CartItem {
	return entities.CartItem{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Name:      m.Name,
		UnitPrice: m.UnitPrice,
		Quantity:  m.Quantity,
		Image:     m.Image,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toAddressModel(a entities.Address) addressModel {
	return addressModel{
		ID:           a.ID,
		UserID:       a.UserID,
		CEP:          a.CEP,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		IsDefault:    a.IsDefault,
		CreatedAt:    a.CreatedAt,
	}
}

func (m addressModel) toEntity() entities.Address {
	return entities.Address{
		ID:           m.ID,
		UserID:       m.UserID,
		CEP:          m.CEP,
		Street:       m.Street,
		Number:       m.Number,
		Complement:   m.Complement,
		Neighborhood: m.Neighborhood,
		City:         m.City,
		State:        m.State,
		IsDefault:    m.IsDefault,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func toCouponModel(c entities.Coupon) couponModel {
	return couponModel{Code: c.Code, Kind: string(c.Kind), Value: c.Value, Description: c.Description}
}

func (m couponModel) toEntity() entities.Coupon {
	return entities.Coupon{Code: m.Code, Kind: entities.CouponKind(m.Kind), Value: m.Value, Description: m.Description}
}

func toPaymentModel(p entities.Payment) paymentModel {
	return paymentModel{
		ID:         p.ID,
		UserID:     p.UserID,
		Amount:     p.Amount,
		Status:     string(p.Status),
		Date:       p.Date,
		Subtotal:   p.Summary.Subtotal,
		Shipping:   p.Summary.Shipping,
		Discount:   p.Summary.Discount,
		Total:      p.Summary.Total,
		Items:      p.Items,
		PayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func (m paymentModel) toEntity() entities.Payment {
	p := entities.Payment{
		ID:     m.ID,
		UserID: m.UserID,
		Amount: m.Amount,
		Status: entities.PaymentStatus(m.Status),
		Date:   m.Date.UTC(),
		Summary: entities.CartSummary{
			Subtotal: m.Subtotal,
			Shipping: m.Shipping,
			Discount: m.Discount,
			Total:    m.Total,
		},
		Items: m.Items,
	}
	if m.PayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(m.PayloadRaw)
		_ = json.Unmarshal(p.ProviderPayloadRaw, &p.ProviderPayload)
	}
	return p
}
