package usecase

import (
	"context"
	"errors"
	"fmt"
	"sacola_api/internal/usecase/interfaces"
	"strings"
	"time"
)

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type LoginResult struct {
	Token     string
	Email     string
	ExpiresIn time.Duration
}

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/auth_usecase_mock.go -package=mocks

type IAuthUseCase interface {
	Login(ctx context.Context, email string) (LoginResult, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenService
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenService) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

// Login registers the e-mail on first use and issues a bearer token.
func (u *AuthUseCase) Login(ctx context.Context, email string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return LoginResult{}, ErrInvalidEmail
	}

	user, err := u.users.EnsureByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	token, ttl, err := u.tokens.Issue(user.Email)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Email: user.Email, ExpiresIn: ttl}, nil
}

// Authenticate resolves a bearer token to the user e-mail.
func (u *AuthUseCase) Authenticate(_ context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	email, err := u.tokens.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return email, nil
}
