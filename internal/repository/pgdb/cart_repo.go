package pgdb

import (
	"context"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo реализует репозиторий корзины поверх PostgreSQL.
// Уникальность пары (user_id, product_id) обеспечивается ограничением таблицы.
type CartRepo struct {
	pool *pgxpool.Pool
}

func NewCartRepo(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// AddOne идемпотентно добавляет товар в корзину: новая позиция создаётся
// с количеством 1, существующая — инкрементируется.
func (c *CartRepo) AddOne(ctx context.Context, userID, productID int64) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, amount)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET amount = cart_items.amount + 1;
	`

	if _, err := c.pool.Exec(ctx, query, userID, productID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

const cartLinesQuery = `
	SELECT ci.product_id, p.title, ci.amount, p.price, p.balance
	FROM cart_items ci
	JOIN products p ON p.id = ci.product_id
	WHERE ci.user_id = $1
	ORDER BY p.title
`

// GetLines возвращает позиции корзины пользователя вместе с текущими ценой и остатком товара.
func (c *CartRepo) GetLines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	rows, err := c.pool.Query(ctx, cartLinesQuery+";", userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return collectCartLines(rows)
}

// GetLinesForUpdate читает позиции корзины внутри транзакции из контекста.
// Строки товаров блокируются до конца транзакции, что сериализует параллельные
// оформления заказа и изменения остатков по тем же товарам.
func (c *CartRepo) GetLinesForUpdate(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	rows, err := tx.Query(ctx, cartLinesQuery+"\n\tFOR UPDATE OF p;", userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return collectCartLines(rows)
}

// Clear удаляет все позиции корзины пользователя внутри транзакции из контекста.
func (c *CartRepo) Clear(ctx context.Context, userID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1;`, userID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func collectCartLines(rows pgx.Rows) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0)
	for rows.Next() {
		var line domain.CartLine
		err := rows.Scan(&line.ProductID, &line.ProductTitle, &line.Amount, &line.Price, &line.Balance)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return lines, nil
}
