package handlers

import (
	"errors"
	"net/http"
	request "sacola_api/internal/adapter/http/dto/request"
	response "sacola_api/internal/adapter/http/dto/response"
	"sacola_api/internal/usecase"
	"sacola_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

// @Summary Lista os cupons disponíveis
// @Tags cupons
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} pkg.HTTPError
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCouponError(err, "Erro ao buscar cupons"))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCoupons(list)))
}

// @Summary Aplica um cupom
// @Tags cupons
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body request.ApplyCouponRequest true "payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/coupon [post]
func (h *CouponHandler) Apply(c *gin.Context) {
	var payload request.ApplyCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapCouponError(usecase.ErrInvalidCouponCode, ""))
		return
	}

	applied, err := h.usecase.Apply(c.Request.Context(), userID(c), payload.Code)
	if err != nil {
		zap.L().Info("[coupon][handler] apply rejected",
			zap.String("user_id", userID(c)),
			zap.String("code", payload.Code),
			zap.Error(err))
		writeError(c, mapCouponError(err, "Erro ao aplicar cupom"))
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(response.FromAppliedCoupon(applied), "Cupom aplicado com sucesso"))
}

// @Summary Remove o cupom aplicado
// @Tags cupons
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/coupon [delete]
func (h *CouponHandler) Remove(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), userID(c)); err != nil {
		writeError(c, mapCouponError(err, "Erro ao remover cupom"))
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(nil, "Cupom removido"))
}

func mapCouponError(err error, internalMsg string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return errUnauthorized
	case errors.Is(err, usecase.ErrInvalidCouponCode):
		return pkg.NewDomainErrorSimple("COUPON_CODE_REQUIRED", "Código do cupom não fornecido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("INVALID_COUPON", "Cupom inválido", http.StatusBadRequest)
	default:
		if internalMsg == "" {
			internalMsg = "Erro interno do servidor"
		}
		return pkg.NewDomainError("INTERNAL_ERROR", internalMsg, err, http.StatusInternalServerError)
	}
}
