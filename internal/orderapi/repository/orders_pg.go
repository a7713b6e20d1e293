package repository

import (
	"context"
	"fmt"

	"fuelmate/internal/common/db"
	"fuelmate/internal/orderapi/models"
)

type OrderRepository interface {
	Create(ctx context.Context, o models.Order) (models.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Order, error)
}

type OrderRepo struct {
	conn *db.Conn
}

func NewOrderRepo(conn *db.Conn) *OrderRepo { return &OrderRepo{conn: conn} }

func (r *OrderRepo) Create(ctx context.Context, o models.Order) (models.Order, error) {
	err := r.conn.QueryRow(ctx, `
INSERT INTO orders (user_id, fuel_type, quantity, brand, delivery_address, payment_method, price, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
RETURNING id, status, created_at, updated_at
`, o.UserID, o.FuelType, o.Quantity, o.Brand, o.DeliveryAddress, o.PaymentMethod, o.Price).
		Scan(&o.ID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return models.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	rows, err := r.conn.Query(ctx, `
SELECT id, user_id, fuel_type, quantity, brand, delivery_address, payment_method, price, status, created_at, updated_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.FuelType, &o.Quantity, &o.Brand,
			&o.DeliveryAddress, &o.PaymentMethod, &o.Price, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
