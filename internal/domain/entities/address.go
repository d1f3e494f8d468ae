package entities

import "time"

// Address is a delivery address (endereço de entrega).
//
// A user may keep several addresses but at most one has IsDefault set; the
// default one drives the shipping quote of the bag.
type Address struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	CEP          string    `json:"cep"`
	Street       string    `json:"logradouro,omitempty"`
	Number       string    `json:"numero,omitempty"`
	Complement   string    `json:"complemento,omitempty"`
	Neighborhood string    `json:"bairro,omitempty"`
	City         string    `json:"cidade,omitempty"`
	State        string    `json:"estado,omitempty"`
	IsDefault    bool      `json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
}
