package response

import (
	"time"

	"sacola_api/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID string          `json:"paymentId"`
	ID        string          `json:"id"`
	Amount    float64         `json:"amount"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`
	Items     int             `json:"items"`
	Summary   SummaryResponse `json:"summary"`

	MPPayloadRaw string                 `json:"mpPayloadRaw,omitempty"`
	MPPayload    map[string]interface{} `json:"mpPayload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		Items:        p.Items,
		Summary:      FromSummary(p.Summary),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
