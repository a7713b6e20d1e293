package domain

// CreateOrderRequest is the customer order-submission payload.
type CreateOrderRequest struct {
	Customer        string `json:"customer"`
	FuelType        string `json:"fuelType"`
	Quantity        int    `json:"quantity"`
	Brand           string `json:"brand"`
	DeliveryAddress string `json:"deliveryAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

// Validate checks the creation fields against the form rules.
func (r CreateOrderRequest) Validate() error {
	if !ValidFuelType(r.FuelType) {
		return &ValidationError{Field: "fuelType", Reason: "must be petrol or diesel"}
	}
	if !ValidQuantity(r.Quantity) {
		return &ValidationError{Field: "quantity", Reason: "must be between 1 and 20 liters"}
	}
	if _, err := UnitPrice(r.Brand, r.FuelType); err != nil {
		return &ValidationError{Field: "brand", Reason: "unknown fuel brand"}
	}
	if len(r.DeliveryAddress) < 5 {
		return &ValidationError{Field: "deliveryAddress", Reason: "please enter a valid address"}
	}
	if !ValidPaymentMethod(r.PaymentMethod) {
		return &ValidationError{Field: "paymentMethod", Reason: "unknown payment method"}
	}
	return nil
}

// ValidationError is a form-level rejection; no mutation was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

// CreateOrderResponse acknowledges a placed order.
type CreateOrderResponse struct {
	ID     string      `json:"id"`
	Status OrderStatus `json:"status"`
	Price  float64     `json:"price"`
}
