package handlers

import (
	"net/http"
	response "sacola_api/internal/adapter/http/dto/response"
	"sacola_api/pkg"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "bag-api"

// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:    "ok",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// NotFound answers unknown routes with the standard error body.
func NotFound(c *gin.Context) {
	writeError(c, pkg.NewDomainErrorSimple("ROUTE_NOT_FOUND", "Rota não encontrada", http.StatusNotFound))
}
