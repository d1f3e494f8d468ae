package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sacola_api/internal/domain/entities"
	mock_interfaces "sacola_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		for _, email := range []string{"", "   ", "no-at-sign"} {
			if _, err := uc.Login(context.Background(), email); !errors.Is(err, ErrInvalidEmail) {
				t.Fatalf("%q: expected ErrInvalidEmail, got %v", email, err)
			}
		}
	})

	t.Run("registers and issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(users, tokens)

		users.EXPECT().EnsureByEmail(gomock.Any(), "ana@loja.com").Return(entities.User{Email: "ana@loja.com"}, nil)
		tokens.EXPECT().Issue("ana@loja.com").Return("tok", 24*time.Hour, nil)

		res, err := uc.Login(context.Background(), " Ana@Loja.com ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Token != "tok" || res.Email != "ana@loja.com" || res.ExpiresIn != 24*time.Hour {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)
		users.EXPECT().EnsureByEmail(gomock.Any(), "a@b.com").Return(entities.User{}, errors.New("db"))

		if _, err := uc.Login(context.Background(), "a@b.com"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, err := uc.Authenticate(context.Background(), " "); !errors.Is(err, ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(nil, tokens)
		tokens.EXPECT().Verify("bad").Return("", errors.New("signature is invalid"))

		if _, err := uc.Authenticate(context.Background(), "bad"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(nil, tokens)
		tokens.EXPECT().Verify("good").Return("a@b.com", nil)

		email, err := uc.Authenticate(context.Background(), "good")
		if err != nil || email != "a@b.com" {
			t.Fatalf("unexpected result: %q err=%v", email, err)
		}
	})
}
