package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the checkout payment outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// Payment is the checkout record of a bag.
//
// Storage model:
//   - PK: id (provider payment id)
//   - index: user_id
//
// Summary is a snapshot of the bag at checkout time; the live summary is never
// stored, but the charged one must be.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the gateway response body for traceability.
//   - ProviderPayload is the parsed representation, useful for debugging.

type Payment struct {
	ID      string        `json:"id"`
	UserID  string        `json:"userId"`
	Amount  float64       `json:"amount"`
	Status  PaymentStatus `json:"status"`
	Date    time.Time     `json:"date"`
	Summary CartSummary   `json:"summary"`
	Items   int           `json:"items"`

	ProviderPayloadRaw json.RawMessage        `json:"providerPayloadRaw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"providerPayload,omitempty"`
}
