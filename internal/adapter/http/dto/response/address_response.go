package response

import (
	"time"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase"
)

type AddressResponse struct {
	ID           string            `json:"id"`
	CEP          string            `json:"cep"`
	Street       string            `json:"logradouro"`
	Number       string            `json:"numero"`
	Complement   string            `json:"complemento"`
	Neighborhood string            `json:"bairro"`
	City         string            `json:"cidade"`
	State        string            `json:"estado"`
	IsDefault    bool              `json:"isDefault"`
	CreatedAt    time.Time         `json:"createdAt"`
	Shipping     *ShippingResponse `json:"shipping,omitempty"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		ID:           a.ID,
		CEP:          a.CEP,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		IsDefault:    a.IsDefault,
		CreatedAt:    a.CreatedAt,
	}
}

func FromAddresses(list []entities.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAddress(a))
	}
	return out
}

func FromAddressWithShipping(r usecase.AddressWithShipping) AddressResponse {
	res := FromAddress(r.Address)
	s := FromShippingQuote(r.Shipping)
	res.Shipping = &s
	return res
}
