package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	request "sacola_api/internal/adapter/http/dto/request"
	response "sacola_api/internal/adapter/http/dto/response"
	"sacola_api/internal/usecase"
	"sacola_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler charges the bag through the payment gateway.
type CheckoutHandler struct {
	usecase  usecase.ICheckoutUseCase
	mockMode bool
}

// NewCheckoutHandler builds the handler; with mockMode an unreadable body is
// replaced by an empty payload instead of being rejected.
func NewCheckoutHandler(uc usecase.ICheckoutUseCase, mockMode bool) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, mockMode: mockMode}
}

// @Summary Paga a sacola via Mercado Pago
// @Tags checkout
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body request.CheckoutRequest false "payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	uid := userID(c)
	log := zap.L().With(zap.String("user_id", uid))
	log.Info("[checkout][handler] start")

	raw, err := c.GetRawData()
	var payload json.RawMessage
	if err == nil {
		payload, err = request.ResolveCheckoutPayload(raw)
	}
	if err != nil {
		if !h.mockMode {
			log.Info("[checkout][handler] invalid payload", zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		log.Info("[checkout][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.Checkout(c.Request.Context(), uid, payload)
	if err != nil {
		log.Warn("[checkout][handler] failed", zap.Error(err))
		writeError(c, mapCheckoutError(err))
		return
	}
	log.Info("[checkout][handler] success",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.OKMessage(response.FromPayment(created), "Pagamento processado"))
}

// @Summary Lista os pagamentos do usuário
// @Tags checkout
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/pagamentos [get]
func (h *CheckoutHandler) ListPayments(c *gin.Context) {
	list, err := h.usecase.ListPayments(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPayments(list)))
}

// @Summary Consulta um pagamento
// @Tags checkout
// @Produce json
// @Security Bearer
// @Param payment_id path string true "ID do pagamento"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/pagamentos/{payment_id} [get]
func (h *CheckoutHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetPayment(c.Request.Context(), userID(c), c.Param("payment_id"))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPayment(p)))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return errUnauthorized
	case errors.Is(err, usecase.ErrInvalidCheckoutPayload), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrEmptyBag):
		return pkg.NewDomainErrorSimple("EMPTY_BAG", "Sacola vazia", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCheckoutTotal):
		return pkg.NewDomainErrorSimple("INVALID_TOTAL", "Total da sacola deve ser maior que zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Gateway de pagamento não configurado", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro ao processar pagamento", err, http.StatusInternalServerError)
	}
}
