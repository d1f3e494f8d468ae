package handlers

import (
	"errors"
	"net/http"
	request "sacola_api/internal/adapter/http/dto/request"
	response "sacola_api/internal/adapter/http/dto/response"
	"sacola_api/internal/domain/pricing"
	"sacola_api/internal/usecase"
	"sacola_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BagHandler handles the item and frete routes of /sacola.
type BagHandler struct {
	usecase usecase.IBagUseCase
}

func NewBagHandler(uc usecase.IBagUseCase) *BagHandler {
	return &BagHandler{usecase: uc}
}

// @Summary Sacola completa com resumo
// @Tags sacola
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola [get]
func (h *BagHandler) GetBag(c *gin.Context) {
	bag, err := h.usecase.GetBag(c.Request.Context(), userID(c))
	if err != nil {
		zap.L().Error("[bag][handler] get failed", zap.String("user_id", userID(c)), zap.Error(err))
		writeError(c, mapBagError(err, "Erro ao buscar sacola"))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromBag(bag)))
}

// @Summary Resumo de valores da sacola
// @Tags sacola
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/resumo [get]
func (h *BagHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.GetSummary(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, mapBagError(err, "Erro ao buscar sacola"))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromSummary(summary)))
}

// AddItem answers 201 for a new line and 200 when the quantity was merged into
// an existing one.
//
// @Summary Adiciona um produto à sacola
// @Tags sacola
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body request.AddItemRequest true "payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/items [post]
func (h *BagHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBagError(usecase.ErrInvalidItem, ""))
		return
	}

	item, created, err := h.usecase.AddItem(c.Request.Context(), userID(c), payload.ToInput())
	if err != nil {
		zap.L().Warn("[bag][handler] add item failed",
			zap.String("user_id", userID(c)),
			zap.Int64("product_id", payload.ProductID),
			zap.Error(err))
		writeError(c, mapBagError(err, "Erro ao adicionar item"))
		return
	}

	if created {
		c.JSON(http.StatusCreated, response.OKMessage(response.FromCartItem(item), "Item adicionado à sacola"))
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(response.FromCartItem(item), "Quantidade atualizada"))
}

// @Summary Altera a quantidade de um item
// @Tags sacola
// @Accept json
// @Produce json
// @Security Bearer
// @Param itemId path string true "ID do item"
// @Param payload body request.UpdateQuantityRequest true "payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/items/{itemId} [put]
func (h *BagHandler) UpdateQuantity(c *gin.Context) {
	var payload request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBagError(usecase.ErrInvalidQuantity, ""))
		return
	}

	item, err := h.usecase.UpdateQuantity(c.Request.Context(), userID(c), c.Param("itemId"), payload.Quantity)
	if err != nil {
		writeError(c, mapBagError(err, "Erro ao atualizar item"))
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(response.FromCartItem(item), "Quantidade atualizada"))
}

// @Summary Remove um item
// @Tags sacola
// @Accept json
// @Produce json
// @Security Bearer
// @Param itemId path string true "ID do item"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/items/{itemId} [delete]
func (h *BagHandler) RemoveItem(c *gin.Context) {
	if err := h.usecase.RemoveItem(c.Request.Context(), userID(c), c.Param("itemId")); err != nil {
		writeError(c, mapBagError(err, "Erro ao remover item"))
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(nil, "Item removido"))
}

// @Summary Esvazia a sacola
// @Tags sacola
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/items [delete]
func (h *BagHandler) Clear(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), userID(c)); err != nil {
		writeError(c, mapBagError(err, "Erro ao limpar sacola"))
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(nil, "Sacola esvaziada"))
}

// @Summary Calcula o frete para um CEP
// @Tags frete
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body request.ShippingRequest true "payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/frete [post]
func (h *BagHandler) QuoteShipping(c *gin.Context) {
	var payload request.ShippingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBagError(usecase.ErrCEPRequired, ""))
		return
	}

	res, err := h.usecase.QuoteShipping(c.Request.Context(), userID(c), payload.CEP)
	if err != nil {
		writeError(c, mapBagError(err, "Erro ao calcular frete"))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromShippingQuoteResult(res)))
}

// mapBagError translates bag use case errors; internalMsg is the message of
// the 500 fallback for the calling route.
func mapBagError(err error, internalMsg string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return errUnauthorized
	case errors.Is(err, usecase.ErrInvalidItem):
		return pkg.NewDomainErrorSimple("INVALID_ITEM", "Dados incompletos do produto", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantidade inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItemID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCEPRequired):
		return pkg.NewDomainErrorSimple("CEP_REQUIRED", "CEP é obrigatório", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidCEP):
		return pkg.NewDomainErrorSimple("INVALID_CEP", "CEP inválido. Deve conter 8 dígitos", http.StatusBadRequest)
	default:
		if internalMsg == "" {
			internalMsg = "Erro interno do servidor"
		}
		return pkg.NewDomainError("INTERNAL_ERROR", internalMsg, err, http.StatusInternalServerError)
	}
}
