package handlers

import (
	"net/http"
	"sacola_api/pkg"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated e-mail.
const ContextUserID = "user_id"

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Token de autenticação não fornecido", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// userID returns the e-mail set by RequireAuth. Handlers mounted without the
// middleware get an empty string and the use cases reject it.
func userID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
