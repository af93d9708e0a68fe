package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bistro-boss/boss-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresRepository(mockDB), mock
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock := setupOrderTestDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS order_items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS orders_user_email_idx").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_InsertsOrderAndItems(t *testing.T) {
	repo, mock := setupOrderTestDB(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("a@b.c", 25.5, int64(2550), "usd", "Pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, "m1", "Salad", 2, 12.75).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order := &domain.Order{
		UserEmail:   "a@b.c",
		TotalAmount: 25.5,
		AmountMinor: 2550,
		Currency:    "usd",
		Status:      domain.OrderPending,
		Items:       []domain.OrderItem{{MenuID: "m1", Name: "Salad", Quantity: 2, Price: 12.75}},
	}
	require.NoError(t, repo.CreateOrder(context.Background(), order))
	assert.Equal(t, 7, order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_RollsBackOnItemFailure(t *testing.T) {
	repo, mock := setupOrderTestDB(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))
	mock.ExpectExec("INSERT INTO order_items").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	order := &domain.Order{Status: domain.OrderPending, Items: []domain.OrderItem{{MenuID: "m1", Quantity: 1}}}
	assert.ErrorIs(t, repo.CreateOrder(context.Background(), order), sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionOrder(t *testing.T) {
	repo, mock := setupOrderTestDB(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("Fulfilled", 3, "PaymentAuthorized").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.TransitionOrder(context.Background(), 3, domain.OrderPaymentAuthorized, domain.OrderFulfilled)
	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, mock := setupOrderTestDB(t)
		mock.ExpectQuery("SELECT id, user_email").WithArgs(99).WillReturnError(sql.ErrNoRows)

		order, err := repo.GetOrder(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("with items", func(t *testing.T) {
		repo, mock := setupOrderTestDB(t)
		now := time.Now()
		mock.ExpectQuery("SELECT id, user_email").WithArgs(4).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_email", "total_amount", "amount_minor", "currency", "status", "payment_intent_id", "created_at", "updated_at",
			}).AddRow(4, "a@b.c", 10.0, int64(1000), "usd", "Pending", nil, now, now))
		mock.ExpectQuery("SELECT menu_id, name, quantity, price").WithArgs(4).
			WillReturnRows(sqlmock.NewRows([]string{"menu_id", "name", "quantity", "price"}).AddRow("m1", "Soup", 1, 10.0))

		order, err := repo.GetOrder(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderPending, order.Status)
		assert.Empty(t, order.PaymentIntentID)
		assert.Equal(t, []domain.OrderItem{{MenuID: "m1", Name: "Soup", Quantity: 1, Price: 10}}, order.Items)
	})
}

func TestListOrdersByEmail(t *testing.T) {
	repo, mock := setupOrderTestDB(t)
	now := time.Now()
	mock.ExpectQuery("FROM orders").WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_email", "total_amount", "amount_minor", "currency", "status", "payment_intent_id", "created_at", "updated_at",
		}).
			AddRow(2, "a@b.c", 5.0, int64(500), "usd", "Failed", "pi_2", now, now).
			AddRow(1, "a@b.c", 9.0, int64(900), "usd", "Fulfilled", "pi_1", now, now))

	orders, err := repo.ListOrdersByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "pi_2", orders[0].PaymentIntentID)
	assert.Equal(t, domain.OrderFulfilled, orders[1].Status)
}
