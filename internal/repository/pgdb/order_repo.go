package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

const orderColumns = `id, user_id, quantity, total_cost, is_payed, order_id, payment_url, created_at`

// Create сохраняет заказ внутри транзакции из контекста.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (user_id, quantity, total_cost)
		VALUES ($1, $2, $3)
		RETURNING ` + orderColumns + `;
	`

	model, err := scanOrder(tx.QueryRow(ctx, query, order.UserID, order.Quantity, order.TotalCost))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// GetByID возвращает заказ по идентификатору.
func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1;`

	model, err := scanOrder(o.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrOrderNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// ListByUser возвращает заказы пользователя, начиная с последних.
func (o *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := o.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.OrderModel
	for rows.Next() {
		model, err := scanOrder(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}

// SetPaymentInfo записывает внешний номер заказа и ссылку на оплату.
func (o *OrderRepo) SetPaymentInfo(ctx context.Context, id int64, externalID, paymentURL string) error {
	query := `
		UPDATE orders
		SET order_id = $2, payment_url = $3
		WHERE id = $1;
	`

	result, err := o.pool.Exec(ctx, query, id, externalID, paymentURL)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row) (*converter.OrderModel, error) {
	var model converter.OrderModel
	err := row.Scan(
		&model.ID,
		&model.UserID,
		&model.Quantity,
		&model.TotalCost,
		&model.IsPayed,
		&model.ExternalID,
		&model.PaymentURL,
		&model.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
