package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `
	id, title, price, discount_price, balance,
	description, short_description, category_id, created_at, updated_at
`

// GetByID возвращает товар по идентификатору.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	model, err := scanProduct(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// List возвращает страницу товаров, упорядоченных по названию.
func (p *ProductRepo) List(ctx context.Context, limit, offset int64) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY title
		LIMIT $1 OFFSET $2;
	`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.collectProducts(rows)
}

// ListByCategoryIDs возвращает страницу товаров, принадлежащих любой из указанных категорий.
func (p *ProductRepo) ListByCategoryIDs(ctx context.Context, categoryIDs []int64, limit, offset int64) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category_id = ANY($1)
		ORDER BY title
		LIMIT $2 OFFSET $3;
	`

	rows, err := p.pool.Query(ctx, query, categoryIDs, limit, offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.collectProducts(rows)
}

// Create сохраняет новый товар.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (title, price, discount_price, balance, description, short_description, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns + `;
	`

	model, err := scanProduct(p.pool.QueryRow(ctx, query,
		product.Title,
		product.Price,
		product.DiscountPrice,
		product.Balance,
		product.Description,
		product.ShortDescription,
		product.CategoryID,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update изменяет товар по идентификатору.
func (p *ProductRepo) Update(ctx context.Context, id int64, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET title = $1,
			price = $2,
			discount_price = $3,
			balance = $4,
			description = $5,
			short_description = $6,
			category_id = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + productColumns + `;
	`

	model, err := scanProduct(p.pool.QueryRow(ctx, query,
		product.Title,
		product.Price,
		product.DiscountPrice,
		product.Balance,
		product.Description,
		product.ShortDescription,
		product.CategoryID,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Delete удаляет товар по идентификатору.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1;`

	result, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

// GetStatistic возвращает минимальную, максимальную цену и суммарный остаток всех товаров.
func (p *ProductRepo) GetStatistic(ctx context.Context) (*usecase.StatisticRes, error) {
	query := `
		SELECT MIN(price), MAX(price), COALESCE(SUM(balance), 0)
		FROM products;
	`

	var stat usecase.StatisticRes
	err := p.pool.QueryRow(ctx, query).Scan(&stat.MinPrice, &stat.MaxPrice, &stat.TotalCount)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &stat, nil
}

func (p *ProductRepo) collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	var models []*converter.ProductModel
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID,
		&model.Title,
		&model.Price,
		&model.DiscountPrice,
		&model.Balance,
		&model.Description,
		&model.ShortDescription,
		&model.CategoryID,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
