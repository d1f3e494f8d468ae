package pricing

import "github.com/shopspring/decimal"

// RegionBand maps an inclusive range of CEP regions (the first two digits of
// the CEP) to a base shipping cost and delivery estimate.
type RegionBand struct {
	MinRegion     int
	MaxRegion     int
	Cost          decimal.Decimal
	EstimatedDays int
	RegionName    string
}

func (b RegionBand) contains(region int) bool {
	return region >= b.MinRegion && region <= b.MaxRegion
}

// Config holds the pricing constants of the engine.
//
// Bands are scanned in order; the first band containing the region wins and
// Fallback applies when none does.
type Config struct {
	FreeShippingThreshold decimal.Decimal
	DefaultShippingCost   decimal.Decimal
	Bands                 []RegionBand
	Fallback              RegionBand
}

func band(min, max int, cost string, days int, name string) RegionBand {
	return RegionBand{
		MinRegion:     min,
		MaxRegion:     max,
		Cost:          decimal.RequireFromString(cost),
		EstimatedDays: days,
		RegionName:    name,
	}
}

// DefaultBands is the frete table by CEP region.
func DefaultBands() []RegionBand {
	return []RegionBand{
		band(1, 9, "15.90", 2, "São Paulo - SP"),
		band(10, 19, "22.90", 3, "Interior de São Paulo"),
		band(20, 28, "19.90", 3, "Rio de Janeiro - RJ"),
		band(30, 39, "25.90", 4, "Minas Gerais"),
		band(40, 48, "32.90", 5, "Bahia"),
		band(50, 56, "35.90", 6, "Pernambuco"),
		band(60, 63, "38.90", 6, "Ceará"),
		band(69, 69, "45.90", 8, "Região Norte"),
		band(70, 73, "28.90", 4, "Brasília/Goiás"),
		band(80, 87, "26.90", 4, "Paraná"),
		band(88, 89, "29.90", 5, "Santa Catarina"),
		band(90, 99, "31.90", 5, "Rio Grande do Sul"),
	}
}

// DefaultFallback applies to regions outside every band (0, 29, 49, 57-59, 64-68, 74-79).
func DefaultFallback() RegionBand {
	return band(0, 0, "35.90", 7, "Outras regiões")
}

func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: decimal.RequireFromString("200.00"),
		DefaultShippingCost:   decimal.RequireFromString("15.90"),
		Bands:                 DefaultBands(),
		Fallback:              DefaultFallback(),
	}
}
