package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// GetAll возвращает снимок всей таблицы категорий.
func (c *CategoryRepo) GetAll(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, title, slug, parent_id
		FROM categories
		ORDER BY title;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.CategoryModel
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Title, &model.Slug, &model.ParentID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}

// GetBySlug возвращает категорию по её slug.
func (c *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `
		SELECT id, title, slug, parent_id
		FROM categories
		WHERE slug = $1;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, slug).
		Scan(&model.ID, &model.Title, &model.Slug, &model.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCategoryNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Create создаёт категорию; slug должен быть уникален.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (title, slug, parent_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, slug, parent_id;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, category.Title, category.Slug, category.ParentID).
		Scan(&model.ID, &model.Title, &model.Slug, &model.ParentID)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.ErrSlugAlreadyTaken
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Update изменяет название и slug категории, найденной по текущему slug.
func (c *CategoryRepo) Update(ctx context.Context, slug string, category *domain.Category) (*domain.Category, error) {
	query := `
		UPDATE categories
		SET title = $1, slug = $2
		WHERE slug = $3
		RETURNING id, title, slug, parent_id;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, category.Title, category.Slug, slug).
		Scan(&model.ID, &model.Title, &model.Slug, &model.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCategoryNotFound
		}
		if postgresDuplicate(err) {
			return nil, e.ErrSlugAlreadyTaken
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Delete удаляет категорию по slug. Подкатегории удаляются каскадно,
// ссылка на категорию у товаров обнуляется (внешние ключи схемы).
func (c *CategoryRepo) Delete(ctx context.Context, slug string) error {
	query := `DELETE FROM categories WHERE slug = $1;`

	result, err := c.pool.Exec(ctx, query, slug)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrCategoryNotFound
	}

	return nil
}
