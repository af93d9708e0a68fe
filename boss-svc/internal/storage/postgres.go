package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bistro-boss/boss-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_email TEXT NOT NULL,
			total_amount NUMERIC(10, 2) NOT NULL,
			amount_minor BIGINT NOT NULL,
			currency TEXT NOT NULL,
			status TEXT NOT NULL,
			payment_intent_id TEXT UNIQUE,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_id TEXT NOT NULL,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			price NUMERIC(10, 2) NOT NULL
		)`,
		"CREATE INDEX IF NOT EXISTS orders_user_email_idx ON orders (user_email)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_email, total_amount, amount_minor, currency, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, order.UserEmail, order.TotalAmount, order.AmountMinor, order.Currency, string(order.Status)).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_id, name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.MenuID, item.Name, item.Quantity, item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) AttachPaymentIntent(ctx context.Context, orderID int, intentID string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET payment_intent_id = $1, updated_at = now() WHERE id = $2",
		intentID, orderID)
	return err
}

// TransitionOrder moves an order from one status to another and returns
// how many rows changed; zero means the order was not in status from.
func (r *PostgresRepository) TransitionOrder(ctx context.Context, orderID int, from, to domain.OrderStatus) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1, updated_at = now() WHERE id = $2 AND status = $3",
		string(to), orderID, string(from))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetOrder returns nil without an error when the order does not exist.
func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var order domain.Order
	var intentID sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_email, total_amount, amount_minor, currency, status, payment_intent_id, created_at, updated_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.UserEmail, &order.TotalAmount, &order.AmountMinor, &order.Currency,
		&order.Status, &intentID, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	order.PaymentIntentID = intentID.String

	rows, err := r.DB.QueryContext(ctx, `
		SELECT menu_id, name, quantity, price
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (r *PostgresRepository) ListOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_email, total_amount, amount_minor, currency, status, payment_intent_id, created_at, updated_at
		FROM orders
		WHERE user_email = $1
		ORDER BY created_at DESC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var intentID sql.NullString
		if err := rows.Scan(&order.ID, &order.UserEmail, &order.TotalAmount, &order.AmountMinor, &order.Currency,
			&order.Status, &intentID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, err
		}
		order.PaymentIntentID = intentID.String
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}
