package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyMPPayload = errors.New("mp_payload cannot be empty")

// CheckoutRequest optionally wraps the Mercado Pago payment payload.
//
// The body may be the payment payload itself or `{"mp_payload": {...}}`; an
// empty body means "let the server fill everything".
type CheckoutRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ResolveCheckoutPayload unwraps the Mercado Pago payload from a raw body.
func ResolveCheckoutPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, ErrEmptyMPPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
