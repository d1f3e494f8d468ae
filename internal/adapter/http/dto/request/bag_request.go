package request

import "sacola_api/internal/usecase"

type LoginRequest struct {
	Email string `json:"email" example:"user@example.com"`
}

// AddItemRequest is the product snapshot sent by the storefront.
type AddItemRequest struct {
	ProductID int64   `json:"productId" example:"1"`
	Name      string  `json:"name" example:"Tênis Runner"`
	Price     float64 `json:"price" example:"199.9"`
	Quantity  int     `json:"quantity" example:"1"`
	Image     string  `json:"image,omitempty"`
}

func (r AddItemRequest) ToInput() usecase.AddItemInput {
	return usecase.AddItemInput{
		ProductID: r.ProductID,
		Name:      r.Name,
		UnitPrice: r.Price,
		Quantity:  r.Quantity,
		Image:     r.Image,
	}
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" example:"2"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" example:"DESC10"`
}

type ShippingRequest struct {
	CEP string `json:"cep" example:"01310-100"`
}

// AddressRequest keeps the Portuguese field names used by the storefront.
type AddressRequest struct {
	CEP          string `json:"cep" example:"01310-100"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"estado"`
}

func (r AddressRequest) ToInput() usecase.AddressInput {
	return usecase.AddressInput{
		CEP:          r.CEP,
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
	}
}
