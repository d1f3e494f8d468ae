package response

import (
	"fmt"
	"time"

	"sacola_api/internal/usecase"
)

type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expiresIn"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, Email: r.Email, ExpiresIn: formatTTL(r.ExpiresIn)}
}

// formatTTL renders whole hours as "24h", anything else with time.Duration's format.
func formatTTL(d time.Duration) string {
	if d > 0 && d%time.Hour == 0 {
		return fmt.Sprintf("%dh", int64(d/time.Hour))
	}
	return d.String()
}
