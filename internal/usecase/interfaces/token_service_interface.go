package interfaces

import "time"

// ITokenService issues and verifies bearer tokens carrying the user e-mail.
//
//go:generate mockgen -source=token_service_interface.go -destination=mocks/token_service_mock.go -package=mock_interfaces
type ITokenService interface {
	Issue(email string) (token string, expiresIn time.Duration, err error)
	Verify(token string) (email string, err error)
}
