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

type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

// SetAddress stores a new default address and returns it with its frete.
//
// @Summary Salva o endereço padrão
// @Tags endereco
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body request.AddressRequest true "payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/endereco [post]
func (h *AddressHandler) SetAddress(c *gin.Context) {
	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapAddressError(usecase.ErrCEPRequired, ""))
		return
	}

	res, err := h.usecase.SetAddress(c.Request.Context(), userID(c), payload.ToInput())
	if err != nil {
		zap.L().Warn("[address][handler] save failed", zap.String("user_id", userID(c)), zap.Error(err))
		writeError(c, mapAddressError(err, "Erro ao salvar endereço"))
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(response.FromAddressWithShipping(res), "Endereço salvo com sucesso"))
}

// @Summary Endereço padrão com frete
// @Tags endereco
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/endereco [get]
func (h *AddressHandler) GetDefault(c *gin.Context) {
	res, err := h.usecase.GetDefault(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, mapAddressError(err, "Erro ao buscar endereço"))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromAddressWithShipping(res)))
}

// @Summary Lista os endereços do usuário
// @Tags endereco
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /sacola/enderecos [get]
func (h *AddressHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, mapAddressError(err, "Erro ao buscar endereço"))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromAddresses(list)))
}

func mapAddressError(err error, internalMsg string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return errUnauthorized
	case errors.Is(err, usecase.ErrCEPRequired):
		return pkg.NewDomainErrorSimple("CEP_REQUIRED", "CEP é obrigatório", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidCEP):
		return pkg.NewDomainErrorSimple("INVALID_CEP", "CEP inválido. Deve conter 8 dígitos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NewDomainErrorSimple("ADDRESS_NOT_FOUND", "Nenhum endereço cadastrado", http.StatusNotFound)
	default:
		if internalMsg == "" {
			internalMsg = "Erro interno do servidor"
		}
		return pkg.NewDomainError("INTERNAL_ERROR", internalMsg, err, http.StatusInternalServerError)
	}
}
