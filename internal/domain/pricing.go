package domain

import (
	"fmt"
	"sort"
)

const (
	FuelPetrol = "petrol"
	FuelDiesel = "diesel"

	MinQuantity = 1
	MaxQuantity = 20
)

// brandPrices holds per-litre prices in rupees by brand and fuel type.
var brandPrices = map[string]map[string]float64{
	"Indian Oil": {FuelPetrol: 95.41, FuelDiesel: 86.67},
	"HP":         {FuelPetrol: 95.50, FuelDiesel: 86.70},
	"BP":         {FuelPetrol: 95.30, FuelDiesel: 86.55},
	"Reliance":   {FuelPetrol: 94.80, FuelDiesel: 85.90},
}

// paymentMethods are the accepted payment options.
var paymentMethods = map[string]bool{
	"upi":    true,
	"card":   true,
	"cod":    true,
	"wallet": true,
}

// UnitPrice returns the per-litre price for brand and fuel type.
func UnitPrice(brand, fuelType string) (float64, error) {
	prices, ok := brandPrices[brand]
	if !ok {
		return 0, fmt.Errorf("unknown brand %q", brand)
	}
	p, ok := prices[fuelType]
	if !ok {
		return 0, fmt.Errorf("unknown fuel type %q", fuelType)
	}
	return p, nil
}

// Brands lists the known fuel brands, sorted for stable output.
func Brands() []string {
	out := make([]string, 0, len(brandPrices))
	for b := range brandPrices {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

func ValidFuelType(t string) bool { return t == FuelPetrol || t == FuelDiesel }

func ValidPaymentMethod(m string) bool { return paymentMethods[m] }

func ValidQuantity(q int) bool { return q >= MinQuantity && q <= MaxQuantity }
