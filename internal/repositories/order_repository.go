package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	UpdatePayment(ctx context.Context, id int64, transactionID string, paidAt time.Time) error
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder inserts the order and its items in one transaction and fills in the generated ids.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	shippingAddress, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (status, email, ip_address, shipping_address, shipping_option, shipping_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, order.Status, order.Email, order.IPAddress, shippingAddress, order.ShippingOption, order.ShippingRate).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, variant_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		if err := tx.QueryRowContext(dbCtx, itemQuery, order.ID, item.VariantID, item.Quantity, item.UnitPrice).Scan(&item.ID); err != nil {
			return fmt.Errorf("failed to insert an order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{ID: id}

	query := `
		SELECT status, email, ip_address, shipping_address, shipping_option, shipping_rate,
		       transaction_id, payment_date, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var (
		addressJSON []byte
		paymentDate sql.NullTime
	)

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&order.Status, &order.Email, &order.IPAddress, &addressJSON,
		&order.ShippingOption, &order.ShippingRate, &order.TransactionID, &paymentDate, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	if err := json.Unmarshal(addressJSON, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}

	if paymentDate.Valid {
		order.PaymentDate = &paymentDate.Time
	}

	rows, err := r.DB.QueryContext(dbCtx, `SELECT id, variant_id, quantity, unit_price FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}
	defer rows.Close()

	order.Items = []models.OrderItem{}

	for rows.Next() {
		item := models.OrderItem{OrderID: id}

		if err := rows.Scan(&item.ID, &item.VariantID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan the order item: %w", err)
		}

		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate the order items: %w", err)
	}

	return order, nil
}

func (r *orderRepository) UpdatePayment(ctx context.Context, id int64, transactionID string, paidAt time.Time) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders
		SET transaction_id = $1, payment_date = $2, updated_at = NOW()
		WHERE id = $3
	`

	return r.execOne(dbCtx, query, transactionID, paidAt, id)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.execOne(dbCtx, `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
}

// execOne returns sql.ErrNoRows when the statement touched nothing.
func (r *orderRepository) execOne(ctx context.Context, query string, args ...any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
