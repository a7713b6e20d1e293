package service

import (
	"context"

	"fuelmate/internal/domain"
	"fuelmate/internal/orderapi/models"
	"fuelmate/internal/orderapi/repository"
)

// OrdersService persists user-scoped orders. The price is always
// recomputed server-side from the brand table.
type OrdersService struct {
	orders repository.OrderRepository
}

func NewOrdersService(orders repository.OrderRepository) *OrdersService {
	return &OrdersService{orders: orders}
}

// CreateOrderInput mirrors the POST /api/orders payload.
type CreateOrderInput struct {
	FuelType        string  `json:"fuelType"`
	Quantity        int     `json:"quantity"`
	Brand           string  `json:"brand"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
	Price           float64 `json:"price"`
}

func (s *OrdersService) Create(ctx context.Context, userID int64, in CreateOrderInput) (models.Order, error) {
	req := domain.CreateOrderRequest{
		FuelType:        in.FuelType,
		Quantity:        in.Quantity,
		Brand:           in.Brand,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   in.PaymentMethod,
	}
	if err := req.Validate(); err != nil {
		return models.Order{}, err
	}
	unit, err := domain.UnitPrice(in.Brand, in.FuelType)
	if err != nil {
		return models.Order{}, err
	}
	return s.orders.Create(ctx, models.Order{
		UserID:          userID,
		FuelType:        in.FuelType,
		Quantity:        in.Quantity,
		Brand:           in.Brand,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   in.PaymentMethod,
		Price:           unit * float64(in.Quantity),
	})
}

func (s *OrdersService) List(ctx context.Context, userID int64) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
