package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sacola_api/internal/adapter/http/handlers/mocks"
	"sacola_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "ana@loja.com").Return(usecase.LoginResult{Token: "tok", Email: "ana@loja.com", ExpiresIn: 24 * time.Hour}, nil)

		w := doRequest(r, http.MethodPost, "/login", `{"email":"ana@loja.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if data["token"] != "tok" || data["expiresIn"] != "24h" {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "nope").Return(usecase.LoginResult{}, usecase.ErrInvalidEmail)

		w := doRequest(r, http.MethodPost, "/login", `{"email":"nope"}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_EMAIL", "Email inválido")
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl))
		r := gin.New()
		r.POST("/login", h.Login)

		w := doRequest(r, http.MethodPost, "/login", `{`)
		expectError(t, w, http.StatusBadRequest, "INVALID_EMAIL", "")
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(usecase.LoginResult{}, errors.New("db down"))

		w := doRequest(r, http.MethodPost, "/login", `{"email":"ana@loja.com"}`)
		expectError(t, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro no login")
	})
}

func TestAuthHandler_RequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IAuthUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/sacola", NewAuthHandler(uc).RequireAuth(), func(c *gin.Context) {
			c.String(http.StatusOK, userID(c))
		})
		return r
	}

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newRouter(mocks.NewMockIAuthUseCase(ctrl))

		w := doRequest(r, http.MethodGet, "/sacola", "")
		expectError(t, w, http.StatusUnauthorized, "UNAUTHORIZED", "Token de autenticação não fornecido")
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Authenticate(gomock.Any(), "bad").Return("", fmt.Errorf("%w: expired", usecase.ErrInvalidToken))

		req := httptest.NewRequest(http.MethodGet, "/sacola", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		expectError(t, w, http.StatusForbidden, "INVALID_TOKEN", "Token inválido ou expirado")
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Authenticate(gomock.Any(), "good").Return("ana@loja.com", nil)

		req := httptest.NewRequest(http.MethodGet, "/sacola", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "ana@loja.com" {
			t.Fatalf("unexpected response: %d %q", w.Code, w.Body.String())
		}
	})
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"Bearer":         "",
		"Basic abc":      "",
		"Bearer abc":     "abc",
		"bearer  abc":    "abc",
		"Bearer abc def": "",
	}
	for header, want := range cases {
		if got := bearerToken(header); got != want {
			t.Fatalf("header %q: expected %q, got %q", header, want, got)
		}
	}
}
