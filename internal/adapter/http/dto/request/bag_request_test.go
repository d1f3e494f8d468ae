package request

import "testing"

func TestAddItemRequest_ToInput(t *testing.T) {
	in := AddItemRequest{ProductID: 3, Name: "Bolsa", Price: 89.9, Quantity: 2, Image: "b.png"}.ToInput()
	if in.ProductID != 3 || in.Name != "Bolsa" || in.UnitPrice != 89.9 || in.Quantity != 2 || in.Image != "b.png" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestAddressRequest_ToInput(t *testing.T) {
	in := AddressRequest{CEP: "01310-100", Street: "Av. Paulista", Number: "1000", City: "São Paulo", State: "SP"}.ToInput()
	if in.CEP != "01310-100" || in.Street != "Av. Paulista" || in.Number != "1000" || in.City != "São Paulo" || in.State != "SP" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
