package handlers

import (
	"errors"
	"net/http"
	request "sacola_api/internal/adapter/http/dto/request"
	response "sacola_api/internal/adapter/http/dto/response"
	"sacola_api/internal/usecase"
	"sacola_api/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler issues bearer tokens and guards the /sacola routes.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// @Summary Login por e-mail
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body request.LoginRequest true "payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapAuthError(usecase.ErrInvalidEmail))
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), payload.Email)
	if err != nil {
		zap.L().Warn("[auth][handler] login failed", zap.Error(err))
		writeError(c, mapAuthError(err))
		return
	}
	zap.L().Info("[auth][handler] login success", zap.String("email", res.Email))

	c.JSON(http.StatusOK, response.OK(response.FromLoginResult(res)))
}

// RequireAuth resolves the bearer token into the user e-mail.
//
// A missing token is answered with 401, an invalid or expired one with 403.
func (h *AuthHandler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortWithError(c, errUnauthorized)
			return
		}

		email, err := h.usecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			zap.L().Debug("[auth][middleware] token rejected", zap.Error(err))
			abortWithError(c, mapAuthError(err))
			return
		}

		c.Set(ContextUserID, email)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Email inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingToken):
		return errUnauthorized
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Token inválido ou expirado", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro no login", err, http.StatusInternalServerError)
	}
}
