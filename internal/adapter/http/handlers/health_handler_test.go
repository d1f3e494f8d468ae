package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthAndNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", Health)
	r.NoRoute(NotFound)

	w := doRequest(r, "GET", "/health", "")
	body := decodeBody(t, w)
	if w.Code != http.StatusOK || body["status"] != "ok" || body["service"] != "bag-api" || body["timestamp"] == "" {
		t.Fatalf("unexpected health: %d %v", w.Code, body)
	}

	expectError(t, doRequest(r, "GET", "/nope", ""), http.StatusNotFound, "ROUTE_NOT_FOUND", "Rota não encontrada")
}
