package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidCheckoutPayload         = errors.New("invalid checkout payload")
	ErrEmptyBag                       = errors.New("bag is empty")
	ErrInvalidCheckoutTotal           = errors.New("bag total must be positive")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// CheckoutOptions tunes payload validation for the configured gateway.
type CheckoutOptions struct {
	// RequirePaymentMethod rejects payloads without payment_method_id. Off in mock mode.
	RequirePaymentMethod bool
	// TestPayerEmail replaces the payer e-mail in sandbox environments.
	TestPayerEmail string
}

// ICheckoutUseCase charges the bag total and records the payment.
//
//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/checkout_usecase_mock.go -package=mocks

type ICheckoutUseCase interface {
	Checkout(ctx context.Context, userID string, payload json.RawMessage) (entities.Payment, error)
	GetPayment(ctx context.Context, userID, paymentID string) (entities.Payment, error)
	ListPayments(ctx context.Context, userID string) ([]entities.Payment, error)
}

type CheckoutUseCase struct {
	bag      IBagUseCase
	coupons  interfaces.ICouponRepository
	payments interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
	opts     CheckoutOptions
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(bag IBagUseCase, coupons interfaces.ICouponRepository, payments interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway, opts CheckoutOptions) *CheckoutUseCase {
	return &CheckoutUseCase{bag: bag, coupons: coupons, payments: payments, gateway: gateway, opts: opts}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, userID string, payload json.RawMessage) (entities.Payment, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return entities.Payment{}, err
	}
	log := zap.L().With(zap.String("user_id", userID))
	log.Info("[checkout][usecase] start", zap.Int("payload_len", len(payload)))

	if len(strings.TrimSpace(string(payload))) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Info("[checkout][usecase] invalid payload (not a json object)")
		return entities.Payment{}, ErrInvalidCheckoutPayload
	}
	if u.opts.RequirePaymentMethod && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Info("[checkout][usecase] missing payment_method_id")
		return entities.Payment{}, ErrInvalidCheckoutPayload
	}
	if u.gateway == nil {
		log.Warn("[checkout][usecase] gateway not configured")
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	bag, err := u.bag.GetBag(ctx, userID)
	if err != nil {
		log.Error("[checkout][usecase] failed loading bag", zap.Error(err))
		return entities.Payment{}, err
	}
	if len(bag.Items) == 0 {
		return entities.Payment{}, ErrEmptyBag
	}
	if bag.Summary.Total <= 0 {
		log.Warn("[checkout][usecase] non-positive total", zap.Float64("total", bag.Summary.Total))
		return entities.Payment{}, ErrInvalidCheckoutTotal
	}
	log.Info("[checkout][usecase] bag loaded",
		zap.Int("items", len(bag.Items)),
		zap.Float64("total", bag.Summary.Total))

	ensurePayerDefaults(reqMap, userID, u.opts.TestPayerEmail)
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = userID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Sacola %s (%d itens)", userID, len(bag.Items))
	}
	// The source of truth for the amount is the bag summary.
	reqMap["transaction_amount"] = bag.Summary.Total

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Error("[checkout][usecase] payment gateway failed", zap.Error(err))
		return entities.Payment{}, classifyGatewayError(err)
	}
	log.Info("[checkout][usecase] payment gateway success",
		zap.String("provider_payment_id", providerID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[checkout][usecase] provider response unmarshal failed", zap.Error(err))
	}

	p := entities.Payment{
		ID:                 providerID,
		UserID:             userID,
		Amount:             bag.Summary.Total,
		Status:             paymentStatusFromProvider(providerStatus),
		Date:               time.Now().UTC(),
		Summary:            bag.Summary,
		Items:              len(bag.Items),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Error("[checkout][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.Payment{}, err
	}

	if created.Status == entities.PaymentStatusAprovado {
		// The payment is already recorded; a failed cleanup only leaves the bag as it was.
		if err := u.bag.Clear(ctx, userID); err != nil {
			log.Error("[checkout][usecase] failed clearing bag", zap.Error(err))
		}
		if err := u.coupons.DeleteApplied(ctx, userID); err != nil {
			log.Error("[checkout][usecase] failed removing coupon", zap.Error(err))
		}
	}
	log.Info("[checkout][usecase] done", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *CheckoutUseCase) GetPayment(ctx context.Context, userID, paymentID string) (entities.Payment, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return entities.Payment{}, err
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" || p.UserID != userID {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// ListPayments returns the user's payments, newest first.
func (u *CheckoutUseCase) ListPayments(ctx context.Context, userID string) ([]entities.Payment, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	list, err := u.payments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and payer.email. The bag owner's e-mail
// is the payer unless a sandbox test payer is configured.
func ensurePayerDefaults(m map[string]any, email, testPayerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if testPayerEmail != "" {
		payer["email"] = testPayerEmail
		delete(payer, "id")
		return
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		payer["email"] = email
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}
