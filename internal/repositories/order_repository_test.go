package repository_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderRepoTest(t *testing.T) (repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewOrderRepo(db), mock
}

func newTestOrder() *models.Order {
	return &models.Order{
		Status:    models.OrderStatusSubmitted,
		Email:     "buyer@example.com",
		IPAddress: "127.0.0.1",
		ShippingAddress: &models.Address{
			Name:       "Jane Doe",
			Line1:      "1 High Street",
			City:       "London",
			PostalCode: "N1 1AA",
			Country:    "GB",
		},
		ShippingOption: "standard",
		ShippingRate:   decimal.RequireFromString("4.50"),
		Items: []models.OrderItem{
			{VariantID: 7, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
			{VariantID: 8, Quantity: 1, UnitPrice: decimal.RequireFromString("12.50")},
		},
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	insertOrderSQL := regexp.QuoteMeta(`INSERT INTO orders (status, email, ip_address, shipping_address, shipping_option, shipping_rate, created_at, updated_at)`)
	insertItemSQL := regexp.QuoteMeta(`INSERT INTO order_items (order_id, variant_id, quantity, unit_price)`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		order := newTestOrder()
		now := time.Now()

		addressJSON, err := json.Marshal(order.ShippingAddress)
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WithArgs(order.Status, order.Email, order.IPAddress, addressJSON, order.ShippingOption, order.ShippingRate).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))
		mock.ExpectQuery(insertItemSQL).
			WithArgs(int64(42), int64(7), 2, order.Items[0].UnitPrice).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(100)))
		mock.ExpectQuery(insertItemSQL).
			WithArgs(int64(42), int64(8), 1, order.Items[1].UnitPrice).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(101)))
		mock.ExpectCommit()

		// Act
		err = repo.CreateOrder(t.Context(), order)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(42), order.ID)
		assert.Equal(t, int64(100), order.Items[0].ID)
		assert.Equal(t, int64(42), order.Items[1].OrderID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Item insert rolls back", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		order := newTestOrder()
		now := time.Now()
		dbErr := errors.New("fk violation")

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))
		mock.ExpectQuery(insertItemSQL).WillReturnError(dbErr)
		mock.ExpectRollback()

		// Act
		err := repo.CreateOrder(t.Context(), order)

		// Assert
		require.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to insert an order item")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrderByID(t *testing.T) {
	orderSQL := regexp.QuoteMeta(`FROM orders WHERE id = $1`)
	itemsSQL := regexp.QuoteMeta(`SELECT id, variant_id, quantity, unit_price FROM order_items WHERE order_id = $1 ORDER BY id`)
	orderCols := []string{"status", "email", "ip_address", "shipping_address", "shipping_option", "shipping_rate",
		"transaction_id", "payment_date", "created_at", "updated_at"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		now := time.Now()
		expected := newTestOrder()

		addressJSON, err := json.Marshal(expected.ShippingAddress)
		require.NoError(t, err)

		mock.ExpectQuery(orderSQL).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(orderCols).
				AddRow("SUBMITTED", expected.Email, expected.IPAddress, addressJSON, "standard", "4.50", "ch_123", now, now, now))
		mock.ExpectQuery(itemsSQL).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "variant_id", "quantity", "unit_price"}).
				AddRow(int64(100), int64(7), 2, "9.99").
				AddRow(int64(101), int64(8), 1, "12.50"))

		// Act
		order, err := repo.GetOrderByID(t.Context(), 42)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusSubmitted, order.Status)
		assert.Equal(t, expected.ShippingAddress, order.ShippingAddress)
		assert.Equal(t, "ch_123", order.TransactionID)
		require.NotNil(t, order.PaymentDate)
		require.Len(t, order.Items, 2)
		assert.True(t, decimal.RequireFromString("36.98").Equal(order.Total()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)

		mock.ExpectQuery(orderSQL).WithArgs(int64(42)).WillReturnError(sql.ErrNoRows)

		// Act
		order, err := repo.GetOrderByID(t.Context(), 42)

		// Assert
		require.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, order)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdatePayment(t *testing.T) {
	updateSQL := regexp.QuoteMeta(`SET transaction_id = $1, payment_date = $2, updated_at = NOW() WHERE id = $3`)
	paidAt := time.Now()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)

		mock.ExpectExec(updateSQL).WithArgs("ch_123", paidAt, int64(42)).WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.UpdatePayment(t.Context(), 42, "ch_123", paidAt)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - No rows", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)

		mock.ExpectExec(updateSQL).WithArgs("ch_123", paidAt, int64(42)).WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.UpdatePayment(t.Context(), 42, "ch_123", paidAt)

		// Assert
		require.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	// Arrange
	repo, mock := setupOrderRepoTest(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`)).
		WithArgs(models.OrderStatusRefunded, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := repo.UpdateStatus(t.Context(), 42, models.OrderStatusRefunded)

	// Assert
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
